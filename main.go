// =============================================================================
// Locator Check - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Locator Check CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   locheck             - Print the locator report for MP.txt
//   locheck materials   - Print the finish types found in descriptions
//   locheck version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Readers, classification and report logic
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/locator-check/cmd"
)

func main() {
	cmd.Execute()
}
