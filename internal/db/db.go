// Package db owns the SQLite connection and the on-disk schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (and creates, if necessary) the journey database at path,
// sets the connection parameters, and ensures the schema exists. The schema
// statements are all IF NOT EXISTS, so Open is idempotent.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Connection parameters ride on the DSN so every pooled connection
	// gets them (busy_timeout and foreign_keys are per-connection). WAL
	// gives one writer plus concurrent readers; busy_timeout is the only
	// lock-wait resilience (no retries above this layer). _txlock=immediate
	// makes transactions take the write lock at BEGIN, so a read-then-write
	// transaction that loses a race queues on the busy timeout instead of
	// failing with SQLITE_BUSY_SNAPSHOT.
	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on&_busy_timeout=10000&_txlock=immediate"
	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// InitSchema applies the schema to an open database. Safe to call more
// than once.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(SchemaSQL)
	return err
}
