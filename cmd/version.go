package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("lexiz", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}
		if version == "(devel)" {
			fmt.Println("Development build; skipping update check.")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		res, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if res.UpdateAvailable {
			fmt.Printf("Update available: %s (run `lexiz update`)\n%s\n", res.LatestVersion, res.ReleaseURL)
		} else {
			fmt.Println("You are on the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
