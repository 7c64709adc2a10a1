//go:build ignore

// Rebuild the full-text search indexes from their base tables.
//
// The steps_fts and decisions_fts indexes are external-content tables kept
// in sync by insert triggers. Rows written before the triggers existed (or
// imported with triggers disabled) are invisible to search until the index
// is rebuilt. Run this once against such a database:
//
//	go run -tags sqlite_fts5 scripts/rebuild_fts.go -db ~/.journey/journey.db
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "", "Path to the journey database (default ~/.journey/journey.db)")
	flag.Parse()

	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve home directory: %v\n", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(home, ".journey", "journey.db")
	}

	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "database not found at %s\n", dbPath)
		os.Exit(1)
	}

	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	for _, table := range []string{"steps_fts", "decisions_fts"} {
		stmt := fmt.Sprintf("INSERT INTO %s(%s) VALUES('rebuild')", table, table)
		if _, err := database.Exec(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "failed to rebuild %s: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("rebuilt %s\n", table)
	}
}
