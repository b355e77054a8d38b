package main

import (
	"os"

	"github.com/simonhull/dcmcsv/cmd/dcmcsv/commands"
)

// Version information - set during build
var (
	commit = "none"
	date   = "unknown"
)

func main() {
	commands.SetVersionInfo(commit, date)

	// Errors are printed directly by the printer package with color formatting
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
