// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; a repository referencing a column that does not
// exist fails immediately with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/journey/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// mustExec runs a statement against the test database and fails the test
// on error.
func mustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
}

// seedSession inserts a test session and returns its ID.
func seedSession(t *testing.T, db *sql.DB, sessionID, project string, startedAt int64) string {
	t.Helper()
	if sessionID == "" {
		sessionID = "11111111-1111-1111-1111-111111111111"
	}
	if project == "" {
		project = "test-project"
	}
	_, err := db.Exec(
		"INSERT INTO sessions (session_id, project, started_at, status) VALUES (?, ?, ?, 'active')",
		sessionID, project, startedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return sessionID
}

// seedFeature inserts a test feature and returns its name.
func seedFeature(t *testing.T, db *sql.DB, featureName, project string, createdAt int64) string {
	t.Helper()
	if featureName == "" {
		featureName = "test-feature"
	}
	if project == "" {
		project = "test-project"
	}
	_, err := db.Exec(
		"INSERT INTO features (feature_name, project, created_at, updated_at) VALUES (?, ?, ?, ?)",
		featureName, project, createdAt, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed feature: %v", err)
	}
	return featureName
}
