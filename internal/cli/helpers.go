// Package cli provides CLI commands for the journey application.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

// NewContext creates the context CLI commands pass to services.
func NewContext() context.Context {
	return context.Background()
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// confirm prints a green check followed by the formatted message.
func confirm(format string, args ...any) {
	fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}
