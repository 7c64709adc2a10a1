package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/wire"
)

var decisionCmd = &cobra.Command{
	Use:   "decision",
	Short: "Record decisions",
}

var decisionRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a decision made during a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		sessionID, _ := cmd.Flags().GetString("session")
		question, _ := cmd.Flags().GetString("question")
		choice, _ := cmd.Flags().GetString("choice")
		decisionType, _ := cmd.Flags().GetString("type")
		featureName, _ := cmd.Flags().GetString("feature")
		alternatives, _ := cmd.Flags().GetStringSlice("alternative")
		rationale, _ := cmd.Flags().GetString("rationale")
		impact, _ := cmd.Flags().GetString("impact")

		req := primary.RecordDecisionRequest{
			SessionID:    sessionID,
			Question:     question,
			Choice:       choice,
			DecisionType: decisionType,
			FeatureName:  featureName,
			Alternatives: alternatives,
			Rationale:    rationale,
			Impact:       impact,
		}
		if cmd.Flags().Changed("step-id") {
			stepID, _ := cmd.Flags().GetInt64("step-id")
			req.StepID = &stepID
		}

		resp, err := wire.DecisionService().RecordDecision(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		confirm("Decision recorded (id %d)", resp.DecisionID)
		return nil
	},
}

// DecisionCmd returns the decision command
func DecisionCmd() *cobra.Command {
	decisionRecordCmd.Flags().StringP("session", "s", "", "Session the decision belongs to (required)")
	decisionRecordCmd.Flags().StringP("question", "q", "", "Question that was decided (required)")
	decisionRecordCmd.Flags().StringP("choice", "c", "", "Option that was chosen (required)")
	decisionRecordCmd.Flags().StringP("type", "t", "", "Decision type (default implementation)")
	decisionRecordCmd.Flags().StringP("feature", "f", "", "Feature the decision relates to")
	decisionRecordCmd.Flags().StringSlice("alternative", nil, "Alternative that was considered (repeatable)")
	decisionRecordCmd.Flags().StringP("rationale", "r", "", "Why the choice was made")
	decisionRecordCmd.Flags().String("impact", "", "Expected impact")
	decisionRecordCmd.Flags().Int64("step-id", 0, "Step the decision belongs to")

	decisionCmd.AddCommand(decisionRecordCmd)

	return decisionCmd
}
