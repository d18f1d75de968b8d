package cmd

import (
	"github.com/abhisek/wortiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wortiz",
	Short: "German vocabulary trainer for Slovenian speakers",
	Long:  "Wortiz is a terminal flashcard trainer for German nouns, irregular verbs, numbers and family vocabulary, with Slovenian prompts.",
	Example: `  wortiz                       start the trainer
  wortiz import nouns words.csv
  wortiz stats`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORTIZ_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORTIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
