package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/config"
	"github.com/example/journey/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the journey database",
		Long:  `Initialize the journey database at ~/.journey/journey.db (or the configured path) with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dbPathFlag)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			fmt.Printf("Initializing journey database at %s\n", cfg.DBPath)

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			confirm("Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  journey session start --project my-project")
			fmt.Println("  journey recall")

			return nil
		},
	}
}
