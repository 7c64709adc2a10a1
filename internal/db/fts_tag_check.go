//go:build !sqlite_fts5

// The schema creates FTS5 virtual tables, and mattn/go-sqlite3 compiles
// the FTS5 extension only when the sqlite_fts5 build tag is set. Without
// the tag an otherwise healthy binary fails at runtime on every command
// with "no such module: fts5", so fail the build instead.
//
// Build with: go build -tags sqlite_fts5 ./...
// or use the Makefile, which sets the tag for build and test.

package db

var _ = buildRequiresTheSqliteFTS5Tag
