// Package version exposes build metadata injected through ldflags. The
// Makefile sets all three variables; a plain `go build` reports dev/unknown.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the full version line shown by `journey --version`.
func String() string {
	return fmt.Sprintf("journey %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
