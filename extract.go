package dcmcsv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// Decoder opens files for extraction. The default is FileDecoder.
type Decoder interface {
	// Open decodes path up to, but excluding, the first top-level element
	// whose tag is >= until.
	Open(ctx context.Context, path string, until Tag) (Dataset, error)
}

// Dataset is an opened file as seen by the extraction worker.
type Dataset interface {
	Get(tag Tag) (*Element, bool)
	Close() error
}

// FileDecoder decodes files with Open. Options are applied before the read
// boundary passed to each call.
type FileDecoder struct {
	Options []Option
}

// Open implements Decoder.
func (d FileDecoder) Open(ctx context.Context, path string, until Tag) (Dataset, error) {
	opts := append(slices.Clip(d.Options), WithReadUntil(until))
	file, err := OpenContext(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Result is the outcome of extracting one file.
//
// On success Values holds every requested tag, with "" for fields that are
// absent or have no text form. On failure Err is set and Values is nil.
type Result struct {
	Path     string
	Values   map[Tag]string
	Warnings []Warning
	Err      *OpenError
}

// OK reports whether the file was decoded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Extract decodes one file and reads every tag of spec from it.
//
// Field-level problems never fail the file. A file that cannot be opened or
// decoded, including a decoder panic, yields a Result carrying *OpenError.
func Extract(ctx context.Context, dec Decoder, path string, spec TagSpec, until Tag) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = failed(path, fmt.Errorf("decoder panic: %v", p))
		}
	}()

	ds, err := dec.Open(ctx, path, until)
	if err != nil {
		return failed(path, err)
	}
	defer ds.Close()

	values := make(map[Tag]string, spec.Len())
	for _, tag := range spec.tags {
		values[tag] = ""
		el, ok := ds.Get(tag)
		if !ok {
			continue
		}
		if s, err := el.Text(); err == nil {
			values[tag] = s
		}
	}

	res = Result{Path: path, Values: values}
	if f, ok := ds.(*File); ok {
		res.Warnings = f.Warnings
	}
	return res
}

func failed(path string, err error) Result {
	var oe *OpenError
	if !errors.As(err, &oe) {
		oe = &OpenError{Path: path, Err: err}
	}
	return Result{Path: path, Err: oe}
}

// ExtractOption configures ExtractMany.
type ExtractOption func(*extractOptions)

type extractOptions struct {
	jobs    int
	decoder Decoder
	logger  *slog.Logger
}

func defaultExtractOptions() *extractOptions {
	return &extractOptions{
		jobs:    runtime.NumCPU(),
		decoder: FileDecoder{},
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithJobs bounds the number of files decoded concurrently. n <= 0 means
// runtime.NumCPU().
func WithJobs(n int) ExtractOption {
	return func(o *extractOptions) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		o.jobs = n
	}
}

// WithDecoder replaces the default FileDecoder.
func WithDecoder(d Decoder) ExtractOption {
	return func(o *extractOptions) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithLogger sets the logger for per-file progress. The default discards.
func WithLogger(l *slog.Logger) ExtractOption {
	return func(o *extractOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// ExtractMany extracts spec from every path using a bounded pool of workers.
//
// Results are returned in the same order as paths regardless of which worker
// finishes first. A failed file is recorded in its Result and never cancels
// or delays the others. When ctx is cancelled, files not yet started are
// recorded as failures wrapping ctx.Err().
//
// Example:
//
//	results := dcmcsv.ExtractMany(ctx, paths, spec, dcmcsv.TagPixelData,
//	    dcmcsv.WithJobs(8),
//	)
//	for _, r := range results {
//		if !r.OK() {
//			log.Printf("skipped: %v", r.Err)
//		}
//	}
func ExtractMany(ctx context.Context, paths []string, spec TagSpec, until Tag, opts ...ExtractOption) []Result {
	options := defaultExtractOptions()
	for _, opt := range opts {
		opt(options)
	}
	log := options.logger

	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	// A plain Group: one file's failure must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(options.jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = failed(path, err)
				return nil
			}

			start := time.Now()
			res := Extract(ctx, options.decoder, path, spec, until)
			results[i] = res

			if !res.OK() {
				log.Debug("file skipped", "path", path, "error", res.Err.Err)
				return nil
			}
			for _, w := range res.Warnings {
				log.Info("decoder warning", "path", path, "warning", w.String())
			}
			if log.Enabled(ctx, slog.LevelDebug) {
				for _, tag := range spec.tags {
					log.Debug("value", "path", path, "tag", tag.String(), "value", res.Values[tag])
				}
			}
			log.Debug("file processed", "path", path, "elapsed", time.Since(start))
			return nil
		})
	}

	_ = g.Wait()
	return results
}
