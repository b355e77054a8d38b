// Package printer writes colored diagnostics for the dcmcsv command.
//
// Diagnostics go to the writer a Printer is built with, normally the
// command's stderr; stdout is reserved for CSV output.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Printer writes diagnostics to a single writer.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to w, or to os.Stderr when w is nil.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{out: w}
}

// Success prints a success message in green with a checkmark prefix
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(p.out, msg)
}

// Warning prints a warning message in yellow with a warning sign prefix
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠") {
		msg = "⚠  " + msg
	}
	yellow.Fprint(p.out, msg)
}

// Skipped lists files that produced no row, followed by a summary line.
func (p *Printer) Skipped(failures []error, total int) {
	if len(failures) == 0 {
		return
	}
	p.Warning("skipped %d of %d files:\n", len(failures), total)
	for _, err := range failures {
		yellow.Fprintf(p.out, "  - %v\n", err)
	}
}

// Error creates a formatted error message with title, explanation, and suggestions.
// It prints to the diagnostics writer and returns a simple error for Cobra.
func (p *Printer) Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(p.out, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.out, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.out, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.out, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.out, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.out, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}
