package types

import (
	"errors"
	"fmt"
)

// ErrNotText is returned by Element.Text for values that have no display
// string, such as sequences and pixel data.
var ErrNotText = errors.New("value is not representable as text")

// UnsupportedFormatError is returned when the file is not a DICOM Part 10 file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when the dataset structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// ResolutionError is returned when a field identifier matches neither a
// numeric tag form nor a dictionary keyword.
type ResolutionError struct {
	// Input is the identifier as the user wrote it.
	Input string
	// Source locates the identifier: "--tag", "--until" or "file:line".
	Source string
}

func (e *ResolutionError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: cannot resolve tag %q", e.Source, e.Input)
	}
	return fmt.Sprintf("cannot resolve tag %q", e.Input)
}

// InvalidInputError is returned when an input path is neither a regular file
// nor a directory.
type InvalidInputError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Path, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// OpenError records that one file of a batch could not be opened or decoded.
// It never aborts the rest of the batch.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Examples include an unknown transfer syntax that was decoded as Explicit VR
// Little Endian, an unsupported character set, or a duplicated element.
type Warning struct {
	// Stage where the warning occurred: "meta", "dataset" or "charset".
	Stage string

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
