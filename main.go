// Package main is the entry point for the tix CLI.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/tix/cmd"
	"github.com/danielolaszy/tix/internal/logging"
)

// main executes the root command. Any user-facing error exits with code 1.
func main() {
	if err := cmd.Execute(); err != nil {
		logging.Debug("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
