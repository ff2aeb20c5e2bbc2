// Package main is the entry point for the trello CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/trello-cli/cmd"
	"github.com/danielolaszy/trello-cli/internal/logging"
)

// main is the entry point of the application.
// It executes the root command and exits with status 1 on any error.
func main() {
	logging.Debug("starting trello cli", "version", cmd.Version)

	if err := cmd.Execute(); err != nil {
		logging.Debug("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
