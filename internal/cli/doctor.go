package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/journey/internal/config"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// expectedTables are the base tables plus the search indexes a healthy
// database carries.
var expectedTables = []string{
	"sessions", "steps", "features", "file_changes", "decisions",
	"steps_fts", "decisions_fts",
}

// DoctorCmd returns the doctor command for database health checks
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the journey database",
		Long: `Health check for the journey database.

Validates:
- Database file presence and size
- Schema completeness (tables and search indexes)
- Journal mode (WAL)

Examples:
  journey doctor          # Run full health check
  journey doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dbPathFlag)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			results := []CheckResult{checkDatabaseFile(cfg.DBPath)}

			// Schema checks only make sense against an existing file.
			if results[0].Status == "✓" {
				database, err := sql.Open("sqlite3", cfg.DBPath)
				if err != nil {
					results = append(results, CheckResult{"Schema", "✗", err.Error()})
				} else {
					defer database.Close()
					results = append(results, checkSchema(database))
					results = append(results, checkJournalMode(database))
				}
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						fmt.Printf("%s: %s\n", r.Name, r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Exit code only, no output")

	return cmd
}

func checkDatabaseFile(path string) CheckResult {
	stat, err := os.Stat(path)
	if err != nil {
		return CheckResult{"Database file", "✗", fmt.Sprintf("not found at %s (run 'journey init')", path)}
	}
	if stat.Size() == 0 {
		return CheckResult{"Database file", "⚠", fmt.Sprintf("empty file at %s", path)}
	}
	return CheckResult{"Database file", "✓", ""}
}

func checkSchema(database *sql.DB) CheckResult {
	var missing []string
	for _, table := range expectedTables {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE name = ?", table,
		).Scan(&name)
		if err != nil {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return CheckResult{"Schema", "✗", fmt.Sprintf("missing tables: %v (run 'journey init')", missing)}
	}
	return CheckResult{"Schema", "✓", ""}
}

func checkJournalMode(database *sql.DB) CheckResult {
	var mode string
	if err := database.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		return CheckResult{"Journal mode", "✗", err.Error()}
	}
	if mode != "wal" {
		return CheckResult{"Journal mode", "⚠", fmt.Sprintf("expected wal, got %s", mode)}
	}
	return CheckResult{"Journal mode", "✓", ""}
}
