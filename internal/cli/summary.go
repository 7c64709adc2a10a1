package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/wire"
)

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize recent journey activity",
		Long:  "Aggregate sessions, features, agent usage, file changes, and decisions over a trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			project, _ := cmd.Flags().GetString("project")
			days, _ := cmd.Flags().GetInt("days")

			summary, err := wire.SummaryService().GetJourneySummary(ctx, project, days)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}

			return printJSON(summary)
		},
	}

	cmd.Flags().StringP("project", "p", "", "Filter by project")
	cmd.Flags().Int("days", 0, "Trailing window in days (default 30)")

	return cmd
}
