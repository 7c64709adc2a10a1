// Package config resolves the journey database location.
//
// The path is established once at process start and threaded into the
// component that opens storage; nothing re-reads the environment per call.
package config

import (
	"os"
	"path/filepath"
)

// EnvDBPath is the environment variable that overrides the database path.
const EnvDBPath = "JOURNEY_DB"

// Config carries the resolved runtime configuration.
type Config struct {
	// DBPath is the absolute path to the SQLite database file.
	DBPath string
}

// Load resolves the configuration. Resolution order for the database path:
// explicit value > JOURNEY_DB env var > ~/.journey/journey.db.
func Load(explicitDBPath string) (*Config, error) {
	if explicitDBPath != "" {
		return &Config{DBPath: explicitDBPath}, nil
	}

	if path := os.Getenv(EnvDBPath); path != "" {
		return &Config{DBPath: path}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Config{DBPath: filepath.Join(home, ".journey", "journey.db")}, nil
}
