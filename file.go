package dcmcsv

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/simonhull/dcmcsv/internal/charset"
	"github.com/simonhull/dcmcsv/internal/dicom"
	"github.com/simonhull/dcmcsv/internal/types"
)

// File is an opened DICOM Part 10 file decoded up to its read boundary.
//
// Only top-level elements are indexed. Sequences and bulk values are
// recorded by offset and length; their contents are not loaded.
//
// Always call Close when done:
//
//	file, err := dcmcsv.Open("image.dcm")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the file
	Path string

	// File size in bytes
	Size int64

	// Transfer syntax of the dataset
	TransferSyntax TransferSyntax

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning

	reader  io.ReaderAt
	dataset *types.Dataset
}

// Open opens a DICOM file and decodes its metadata.
//
// Decoding stops at PixelData unless WithReadUntil or WithoutReadUntil says
// otherwise. A file without the "DICM" prefix fails with
// *UnsupportedFormatError; a malformed dataset fails with
// *CorruptedFileError unless WithLenientParsing is given.
//
// Example:
//
//	file, err := dcmcsv.Open("image.dcm")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	if el, ok := file.Get(dcmcsv.NewTag(0x0010, 0x0010)); ok {
//		name, _ := el.Text()
//		fmt.Println(name)
//	}
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	file.reader = f

	return file, nil
}

// openReader decodes from an io.ReaderAt (internal, for testing)
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	cs := charset.Default
	if options.charset != "" {
		var err error
		if cs, err = charset.Parse(options.charset); err != nil {
			return nil, fmt.Errorf("charset fallback: %w", err)
		}
	}

	d := options.dictionary
	if d == nil {
		d = StandardDictionary()
	}

	ds, err := dicom.Parse(r, size, path, dicom.Options{
		ReadUntil:   options.readUntil,
		HasBoundary: options.hasBoundary,
		Dictionary:  vrLookup{d},
		Charset:     cs,
		Lenient:     options.lenient,
	})
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:           path,
		Size:           size,
		TransferSyntax: ds.TransferSyntax,
		Warnings:       ds.Warnings,
		dataset:        ds,
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0])
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is opened. Decoding a single
// header is not interruptible.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// Get returns the top-level element for tag.
func (f *File) Get(tag Tag) (*Element, bool) {
	return f.dataset.Get(tag)
}

// Elements iterates over the decoded top-level elements in file order.
func (f *File) Elements() iter.Seq[*Element] {
	return f.dataset.All()
}

// Len returns the number of decoded top-level elements.
func (f *File) Len() int {
	return f.dataset.Len()
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
