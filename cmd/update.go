package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/wortiz/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update wortiz to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if updateCheckOnly {
			return runUpdateCheck(ctx, checker)
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo wortiz update", err)
		}

		return err
	},
}

func runUpdateCheck(ctx context.Context, checker *selfupdate.Checker) error {
	if version == "(devel)" {
		fmt.Println("Development build; version checks are disabled.")
		return nil
	}

	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		fmt.Println("Already running the latest version.")
		return nil
	}
	fmt.Printf("Update available: %s -> %s\n%s\n", version, result.LatestVersion, result.ReleaseURL)
	return nil
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only check whether a newer release exists")
}
