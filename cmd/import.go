package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/wortiz/internal/importer"
	"github.com/abhisek/wortiz/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import vocabulary from CSV files",
}

var importNounsCmd = &cobra.Command{
	Use:   "nouns <file.csv>",
	Short: "Import nouns (slovensko,nemško with article)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], importer.Nouns)
	},
}

var importVerbsCmd = &cobra.Command{
	Use:   "verbs <file.csv>",
	Short: "Import irregular verbs (slovensko,infinitiv,3.os,preterit,perfekt)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], importer.Verbs)
	},
}

var importFamilyCmd = &cobra.Command{
	Use:   "family <file.csv>",
	Short: "Import family words (lemma,gender,plural,sl_singular,sl_plural,level)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], importer.FamilyWords)
	},
}

func runImport(cmd *cobra.Command, path string, do func(context.Context, io.Reader, store.ItemRepo) (importer.Result, error)) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open CSV: %w", err)
	}
	defer f.Close()

	res, err := do(cmd.Context(), f, st.ItemRepo())
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d rows (%d duplicates skipped).\n", res.Inserted, res.Skipped)
	for _, rowErr := range res.Errors {
		fmt.Fprintf(os.Stderr, "  %s\n", rowErr)
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("%d rows rejected", len(res.Errors))
	}
	return nil
}

func init() {
	importCmd.AddCommand(importNounsCmd)
	importCmd.AddCommand(importVerbsCmd)
	importCmd.AddCommand(importFamilyCmd)
}
