package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/wortiz/internal/llm"
	"github.com/abhisek/wortiz/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().ListLLMRequests(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Time.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		usage, err := st.EventRepo().LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, mu := range usage {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unknownModels = append(unknownModels, mu.Model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
