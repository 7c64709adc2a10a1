package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/wire"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the journey database",
	Long:  "Read-only queries over sessions, steps, file changes, and decisions",
}

var querySessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		project, _ := cmd.Flags().GetString("project")
		days, _ := cmd.Flags().GetInt("days")
		limit, _ := cmd.Flags().GetInt("limit")

		sessions, err := wire.QueryService().GetRecentSessions(ctx, project, days, limit)
		if err != nil {
			return fmt.Errorf("failed to query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		return printJSON(sessions)
	},
}

var queryStepsCmd = &cobra.Command{
	Use:   "steps [session-id]",
	Short: "List all steps of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		steps, err := wire.QueryService().GetSessionSteps(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to query steps: %w", err)
		}
		if len(steps) == 0 {
			fmt.Println("No steps found.")
			return nil
		}

		return printJSON(steps)
	},
}

var queryFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List recent file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		days, _ := cmd.Flags().GetInt("days")
		limit, _ := cmd.Flags().GetInt("limit")

		changes, err := wire.QueryService().GetRecentFileChanges(ctx, days, limit)
		if err != nil {
			return fmt.Errorf("failed to query file changes: %w", err)
		}
		if len(changes) == 0 {
			fmt.Println("No file changes found.")
			return nil
		}

		return printJSON(changes)
	},
}

var queryDecisionsCmd = &cobra.Command{
	Use:   "decisions [feature-name]",
	Short: "List all decisions for a feature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		decisions, err := wire.QueryService().GetFeatureDecisions(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to query decisions: %w", err)
		}
		if len(decisions) == 0 {
			fmt.Println("No decisions found.")
			return nil
		}

		return printJSON(decisions)
	},
}

var querySearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Full-text search over steps or decisions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		limit, _ := cmd.Flags().GetInt("limit")
		decisions, _ := cmd.Flags().GetBool("decisions")

		if decisions {
			matches, err := wire.QueryService().SearchDecisions(ctx, args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to search decisions: %w", err)
			}
			if len(matches) == 0 {
				fmt.Println("No matches found.")
				return nil
			}
			return printJSON(matches)
		}

		matches, err := wire.QueryService().SearchSteps(ctx, args[0], limit)
		if err != nil {
			return fmt.Errorf("failed to search steps: %w", err)
		}
		if len(matches) == 0 {
			fmt.Println("No matches found.")
			return nil
		}
		return printJSON(matches)
	},
}

// QueryCmd returns the query command
func QueryCmd() *cobra.Command {
	querySessionsCmd.Flags().StringP("project", "p", "", "Filter by project")
	querySessionsCmd.Flags().Int("days", 0, "Trailing window in days (default 7)")
	querySessionsCmd.Flags().Int("limit", 0, "Maximum results (default 20)")
	queryFilesCmd.Flags().Int("days", 0, "Trailing window in days (default 7)")
	queryFilesCmd.Flags().Int("limit", 0, "Maximum results (default 50)")
	querySearchCmd.Flags().Int("limit", 0, "Maximum results (default 20)")
	querySearchCmd.Flags().Bool("decisions", false, "Search decisions instead of steps")

	queryCmd.AddCommand(querySessionsCmd)
	queryCmd.AddCommand(queryStepsCmd)
	queryCmd.AddCommand(queryFilesCmd)
	queryCmd.AddCommand(queryDecisionsCmd)
	queryCmd.AddCommand(querySearchCmd)

	return queryCmd
}
