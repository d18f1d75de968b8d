package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/wortiz/internal/store"
	"github.com/abhisek/wortiz/internal/vocab"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics per module",
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

		ctx := cmd.Context()

		fmt.Printf("%-20s  %8s  %8s  %8s  %8s  %8s  %6s\n",
			"Module", "Attempts", "Correct", "Wrong", "Reveals", "Accuracy", "Cycles")
		fmt.Println(strings.Repeat("─", 78))

		var grand store.Totals
		var grandCycles int
		for _, kind := range vocab.AllKinds() {
			totals, err := st.StatsRepo().TotalsFor(ctx, string(kind))
			if err != nil {
				return fmt.Errorf("totals for %s: %w", kind, err)
			}
			cycles, err := st.CycleRepo().Count(ctx, string(kind))
			if err != nil {
				return fmt.Errorf("cycle count for %s: %w", kind, err)
			}

			fmt.Printf("%-20s  %8d  %8d  %8d  %8d  %7.1f%%  %6d\n",
				kind.Label(), totals.Attempts, totals.Correct, totals.Wrong,
				totals.Reveals, accuracy(totals), cycles)

			grand.Attempts += totals.Attempts
			grand.Correct += totals.Correct
			grand.Wrong += totals.Wrong
			grand.Reveals += totals.Reveals
			grandCycles += cycles
		}

		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-20s  %8d  %8d  %8d  %8d  %7.1f%%  %6d\n",
			"TOTAL", grand.Attempts, grand.Correct, grand.Wrong,
			grand.Reveals, accuracy(grand), grandCycles)
		return nil
	},
}

func accuracy(t store.Totals) float64 {
	if t.Attempts == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempts) * 100
}
