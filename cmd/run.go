package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/wortiz/internal/app"
	"github.com/abhisek/wortiz/internal/coach"
	"github.com/abhisek/wortiz/internal/llm"
	"github.com/abhisek/wortiz/internal/progress"
	"github.com/abhisek/wortiz/internal/selfupdate"
	"github.com/abhisek/wortiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Progress: progress.NewService(st),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coach tips will be unavailable.")
	} else {
		opts.Tips = coach.NewService(provider, coach.DefaultConfig())
	}

	notice := checkForUpdate()
	runErr := app.Run(opts)

	// Non-blocking: only print if the check finished while playing.
	select {
	case msg := <-notice:
		if msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
	default:
	}
	return runErr
}

// checkForUpdate probes the latest release in the background so the
// notice can be shown once the TUI exits.
func checkForUpdate() <-chan string {
	ch := make(chan string, 1)
	if version == "(devel)" {
		ch <- ""
		return ch
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker()
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			ch <- ""
			return
		}
		ch <- fmt.Sprintf("A new version is available: %s (run `wortiz update`)", result.LatestVersion)
	}()
	return ch
}
