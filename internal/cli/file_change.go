package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/wire"
)

var fileChangeCmd = &cobra.Command{
	Use:   "file",
	Short: "Record file changes",
}

var fileChangeRecordCmd = &cobra.Command{
	Use:   "record [path]",
	Short: "Record a file change in a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		sessionID, _ := cmd.Flags().GetString("session")
		changeType, _ := cmd.Flags().GetString("type")
		oldPath, _ := cmd.Flags().GetString("old-path")
		description, _ := cmd.Flags().GetString("description")

		req := primary.RecordFileChangeRequest{
			SessionID:   sessionID,
			FilePath:    args[0],
			ChangeType:  changeType,
			OldPath:     oldPath,
			Description: description,
		}
		if cmd.Flags().Changed("step-id") {
			stepID, _ := cmd.Flags().GetInt64("step-id")
			req.StepID = &stepID
		}
		if cmd.Flags().Changed("added") {
			added, _ := cmd.Flags().GetInt("added")
			req.LinesAdded = &added
		}
		if cmd.Flags().Changed("removed") {
			removed, _ := cmd.Flags().GetInt("removed")
			req.LinesRemoved = &removed
		}

		resp, err := wire.FileChangeService().RecordFileChange(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to record file change: %w", err)
		}

		confirm("File change recorded (id %d)", resp.ChangeID)
		return nil
	},
}

// FileChangeCmd returns the file command
func FileChangeCmd() *cobra.Command {
	fileChangeRecordCmd.Flags().StringP("session", "s", "", "Session the change belongs to (required)")
	fileChangeRecordCmd.Flags().StringP("type", "t", "", "Change type: created, modified, deleted, renamed (required)")
	fileChangeRecordCmd.Flags().String("old-path", "", "Previous path for renames")
	fileChangeRecordCmd.Flags().StringP("description", "d", "", "What changed")
	fileChangeRecordCmd.Flags().Int64("step-id", 0, "Step the change belongs to")
	fileChangeRecordCmd.Flags().Int("added", 0, "Lines added")
	fileChangeRecordCmd.Flags().Int("removed", 0, "Lines removed")

	fileChangeCmd.AddCommand(fileChangeRecordCmd)

	return fileChangeCmd
}
