package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/simonhull/dcmcsv"
)

const maxValueWidth = 64

// Useful test tool to confirm what the decoder actually reads from a file.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: dcm-dump <file.dcm>")
		os.Exit(1)
	}

	f, err := dcmcsv.Open(os.Args[1], dcmcsv.WithoutReadUntil(), dcmcsv.WithLenientParsing())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	fmt.Printf("%s (%d bytes)\n", f.Path, f.Size)
	fmt.Printf("Transfer syntax: %s\n\n", f.TransferSyntax)

	r := dcmcsv.NewResolver(nil)
	for el := range f.Elements() {
		fmt.Printf("%8d  %s %s %10s  %-32s %s\n",
			el.Offset, el.Tag, el.VR, length(el.Length), r.DisplayName(el.Tag), value(el))
	}

	for _, w := range f.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func length(n uint32) string {
	if n == 0xFFFFFFFF {
		return "undefined"
	}
	return fmt.Sprint(n)
}

func value(el *dcmcsv.Element) string {
	s, err := el.Text()
	if errors.Is(err, dcmcsv.ErrNotText) {
		return "<" + string(el.VR) + ">"
	}
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	if len(s) > maxValueWidth {
		s = s[:maxValueWidth-3] + "..."
	}
	return fmt.Sprintf("%q", s)
}
