package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/wire"
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Track features through the pipeline",
	Long:  "Create features, advance them through pipeline stages 0-8, and inspect their progress",
}

var featureSetCmd = &cobra.Command{
	Use:   "set [feature-name]",
	Short: "Create or update a feature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		project, _ := cmd.Flags().GetString("project")
		status, _ := cmd.Flags().GetString("status")
		description, _ := cmd.Flags().GetString("description")

		req := primary.UpsertFeatureRequest{
			FeatureName: args[0],
			Project:     project,
			Status:      status,
			Description: description,
		}
		if cmd.Flags().Changed("stage") {
			stage, _ := cmd.Flags().GetInt("stage")
			req.CurrentStage = &stage
		}

		resp, err := wire.FeatureService().UpsertFeature(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to upsert feature: %w", err)
		}

		confirm("Feature %s saved (id %d)", args[0], resp.FeatureID)
		return nil
	},
}

var featureGetCmd = &cobra.Command{
	Use:   "get [feature-name]",
	Short: "Show a feature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		feature, err := wire.FeatureService().GetFeature(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get feature: %w", err)
		}
		if feature == nil {
			fmt.Println("Feature not found.")
			return nil
		}

		return printJSON(feature)
	},
}

var featureStageCmd = &cobra.Command{
	Use:   "stage [feature-name] [stage]",
	Short: "Mark a pipeline stage complete",
	Long:  "Set the feature's current stage and stamp its completion time",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		stage, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid stage %q: %w", args[1], err)
		}

		if err := wire.FeatureService().MarkStageComplete(ctx, args[0], stage); err != nil {
			return fmt.Errorf("failed to mark stage complete: %w", err)
		}

		confirm("Feature %s advanced to stage %d", args[0], stage)
		return nil
	},
}

// FeatureCmd returns the feature command
func FeatureCmd() *cobra.Command {
	featureSetCmd.Flags().StringP("project", "p", "", "Project the feature belongs to (required on create)")
	featureSetCmd.Flags().Int("stage", 0, "Current pipeline stage (0-8)")
	featureSetCmd.Flags().StringP("status", "s", "", "Feature status (in_progress, completed, blocked)")
	featureSetCmd.Flags().StringP("description", "d", "", "Feature description")

	featureCmd.AddCommand(featureSetCmd)
	featureCmd.AddCommand(featureGetCmd)
	featureCmd.AddCommand(featureStageCmd)

	return featureCmd
}
