package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/wire"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Record session steps",
}

var stepRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a step in a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		sessionID, _ := cmd.Flags().GetString("session")
		stepType, _ := cmd.Flags().GetString("type")
		action, _ := cmd.Flags().GetString("action")
		agentName, _ := cmd.Flags().GetString("agent")
		agentModel, _ := cmd.Flags().GetString("model")
		target, _ := cmd.Flags().GetString("target")
		result, _ := cmd.Flags().GetString("result")
		stepContext, _ := cmd.Flags().GetString("context")
		created, _ := cmd.Flags().GetStringSlice("created")
		modified, _ := cmd.Flags().GetStringSlice("modified")
		deleted, _ := cmd.Flags().GetStringSlice("deleted")

		req := primary.RecordStepRequest{
			SessionID:     sessionID,
			StepType:      stepType,
			Action:        action,
			AgentName:     agentName,
			AgentModel:    agentModel,
			Target:        target,
			Result:        result,
			FilesCreated:  created,
			FilesModified: modified,
			FilesDeleted:  deleted,
			Context:       stepContext,
		}
		if cmd.Flags().Changed("stage") {
			stage, _ := cmd.Flags().GetInt("stage")
			req.PipelineStage = &stage
		}

		resp, err := wire.StepService().RecordStep(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to record step: %w", err)
		}

		confirm("Step recorded (id %d)", resp.StepID)
		return nil
	},
}

// StepCmd returns the step command
func StepCmd() *cobra.Command {
	stepRecordCmd.Flags().StringP("session", "s", "", "Session the step belongs to (required)")
	stepRecordCmd.Flags().StringP("type", "t", "", "Step type, e.g. agent_spawn, tool_use, decision (required)")
	stepRecordCmd.Flags().StringP("action", "a", "", "What happened (required)")
	stepRecordCmd.Flags().String("agent", "", "Agent that performed the step")
	stepRecordCmd.Flags().String("model", "", "Model the agent ran on")
	stepRecordCmd.Flags().Int("stage", 0, "Pipeline stage (0-8)")
	stepRecordCmd.Flags().String("target", "", "What the step acted on")
	stepRecordCmd.Flags().String("result", "", "Outcome of the step")
	stepRecordCmd.Flags().String("context", "", "Free-form context")
	stepRecordCmd.Flags().StringSlice("created", nil, "Files created by the step")
	stepRecordCmd.Flags().StringSlice("modified", nil, "Files modified by the step")
	stepRecordCmd.Flags().StringSlice("deleted", nil, "Files deleted by the step")

	stepCmd.AddCommand(stepRecordCmd)

	return stepCmd
}
