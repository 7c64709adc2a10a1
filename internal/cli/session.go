package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/wire"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage work sessions",
	Long:  "Start, end, and inspect work sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		project, _ := cmd.Flags().GetString("project")
		feature, _ := cmd.Flags().GetString("feature")
		request, _ := cmd.Flags().GetString("request")

		resp, err := wire.SessionService().StartSession(ctx, primary.StartSessionRequest{
			Project:        project,
			FeatureName:    feature,
			InitialRequest: request,
		})
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		confirm("Session started: %s", resp.SessionID)
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end [session-id]",
	Short: "End an active session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		summary, _ := cmd.Flags().GetString("summary")
		status, _ := cmd.Flags().GetString("status")

		err := wire.SessionService().EndSession(ctx, primary.EndSessionRequest{
			SessionID: args[0],
			Summary:   summary,
			Status:    status,
		})
		if err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}

		confirm("Session ended: %s", args[0])
		return nil
	},
}

var sessionActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		project, _ := cmd.Flags().GetString("project")

		session, err := wire.SessionService().GetActiveSession(ctx, project)
		if err != nil {
			return fmt.Errorf("failed to get active session: %w", err)
		}
		if session == nil {
			fmt.Println("No active session.")
			return nil
		}

		return printJSON(session)
	},
}

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	sessionStartCmd.Flags().StringP("project", "p", "", "Project the session belongs to (required)")
	sessionStartCmd.Flags().StringP("feature", "f", "", "Feature being worked on")
	sessionStartCmd.Flags().StringP("request", "r", "", "Initial request that triggered the session")
	sessionEndCmd.Flags().StringP("summary", "s", "", "Summary of what the session accomplished")
	sessionEndCmd.Flags().String("status", "", "Final status (completed or abandoned, default completed)")
	sessionActiveCmd.Flags().StringP("project", "p", "", "Filter by project")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionEndCmd)
	sessionCmd.AddCommand(sessionActiveCmd)

	return sessionCmd
}
