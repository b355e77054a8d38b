package dcmcsv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileNameColumn is the header of the first column.
const FileNameColumn = "FileName"

// Table is the assembled output: one row per decoded file in input order.
type Table struct {
	Header   []string
	Rows     [][]string
	Failures []*OpenError
}

// Assemble builds the table for results. The header is FileNameColumn
// followed by the display name of each tag in spec. Each successful result
// becomes a row of its base file name and one cell per tag; failures are
// collected in Table.Failures and contribute no row.
func Assemble(results []Result, spec TagSpec, r *Resolver) *Table {
	t := &Table{
		Header: make([]string, 0, spec.Len()+1),
	}
	t.Header = append(t.Header, FileNameColumn)
	for _, tag := range spec.tags {
		t.Header = append(t.Header, r.DisplayName(tag))
	}

	for _, res := range results {
		if !res.OK() {
			t.Failures = append(t.Failures, res.Err)
			continue
		}
		row := make([]string, 0, len(t.Header))
		row = append(row, filepath.Base(res.Path))
		for _, tag := range spec.tags {
			row = append(row, res.Values[tag])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// WriteCSV writes the header and rows with RFC 4180 quoting.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// WriteFile writes the CSV to path atomically: the table goes to a temporary
// file in the same directory which is renamed over path only once complete.
// On failure path is left untouched.
//
// A replaced file keeps its permissions; a new file is created 0644.
func (t *Table) WriteFile(path string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".dcmcsv-*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set output mode: %w", err)
	}

	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err := t.WriteCSV(bw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
