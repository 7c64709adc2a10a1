package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/cli"
	"github.com/example/journey/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "journey",
		Short:   "journey - local development journey ledger",
		Version: version.String(),
		Long: `journey is a CLI tool for tracking development work across sessions.
It records steps, file changes, and decisions as agents move features
through the pipeline, and reconstructs context when work resumes.`,
	}

	cli.AddGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.SessionCmd())
	rootCmd.AddCommand(cli.StepCmd())
	rootCmd.AddCommand(cli.FeatureCmd())
	rootCmd.AddCommand(cli.FileChangeCmd())
	rootCmd.AddCommand(cli.DecisionCmd())
	rootCmd.AddCommand(cli.QueryCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.RecallCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
