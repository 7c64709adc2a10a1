package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/journey/internal/wire"
)

// dbPathFlag holds the --db override for the current invocation.
var dbPathFlag string

// AddGlobalFlags wires the persistent flags shared by every command.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the journey database (overrides JOURNEY_DB)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if dbPathFlag != "" {
			wire.SetDBPath(dbPathFlag)
		}
	}
}
