package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/wire"
)

// RecallCmd returns the recall command
func RecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall [project]",
		Short: "Show what was happening last",
		Long:  "Reconstruct the most recent session: feature, stage, last actions, last decision, and the recommended next step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			global, _ := cmd.Flags().GetBool("global")
			format, _ := cmd.Flags().GetString("format")

			project := ""
			if len(args) > 0 {
				project = args[0]
			}

			view, err := wire.RecallService().GetLastSessionInfo(ctx, project, global)
			if err != nil {
				return fmt.Errorf("failed to recall last session: %w", err)
			}

			switch format {
			case "json":
				if view == nil {
					fmt.Println("null")
					return nil
				}
				return printJSON(view)
			case "text", "":
				fmt.Println(wire.RecallService().FormatText(view))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().Bool("global", false, "Show recent sessions across all projects")
	cmd.Flags().String("format", "text", "Output format: text or json")

	return cmd
}
