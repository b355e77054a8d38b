package dcmcsv

import (
	"github.com/simonhull/dcmcsv/internal/types"
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Returned when a file lacks the DICOM Part 10 preamble.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// ResolutionError is an alias to types.ResolutionError.
// Returned when a tag identifier cannot be resolved.
type ResolutionError = types.ResolutionError

// InvalidInputError is an alias to types.InvalidInputError.
type InvalidInputError = types.InvalidInputError

// OpenError is an alias to types.OpenError.
// Recorded per file by Extract and ExtractMany; it never aborts a batch.
type OpenError = types.OpenError

// Warning is an alias to types.Warning.
type Warning = types.Warning
