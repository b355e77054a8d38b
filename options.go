package dcmcsv

// Option configures how a file is opened and decoded.
//
// Options use the functional options pattern:
//
//	file, err := dcmcsv.Open("image.dcm",
//	    dcmcsv.WithReadUntil(dcmcsv.NewTag(0x0020, 0x0000)),
//	    dcmcsv.WithCharsetFallback("ISO_IR 100"),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	readUntil      Tag
	hasBoundary    bool       // Stop decoding at readUntil
	charset        string     // Character set used when the file names none
	dictionary     Dictionary // VRs for implicit datasets
	lenient        bool       // Keep partial datasets of malformed files
	strictParsing  bool       // Fail on any warning
	ignoreWarnings bool       // Suppress all warnings
}

// defaultOptions returns the default configuration: decoding stops at
// PixelData and uses the standard dictionary.
func defaultOptions() *openOptions {
	return &openOptions{
		readUntil:   TagPixelData,
		hasBoundary: true,
	}
}

// WithReadUntil stops decoding before the first top-level element whose tag
// is greater than or equal to tag.
//
// The default is PixelData (7FE0,0010), so pixel buffers are never read.
func WithReadUntil(tag Tag) Option {
	return func(o *openOptions) {
		o.readUntil = tag
		o.hasBoundary = true
	}
}

// WithoutReadUntil decodes the whole file. Bulk values are still only
// recorded by offset and length.
func WithoutReadUntil() Option {
	return func(o *openOptions) {
		o.hasBoundary = false
	}
}

// WithCharsetFallback sets the Specific Character Set defined term used for
// text when a file does not declare one, e.g. "ISO_IR 100" for Latin-1
// archives written without (0008,0005).
//
// An unknown term makes Open fail.
func WithCharsetFallback(term string) Option {
	return func(o *openOptions) {
		o.charset = term
	}
}

// WithDictionary sets the dictionary used to recover VRs of implicitly
// encoded elements.
func WithDictionary(d Dictionary) Option {
	return func(o *openOptions) {
		o.dictionary = d
	}
}

// WithLenientParsing keeps the elements decoded before a structural error
// instead of failing, and records the error as a warning.
//
// Useful for truncated transfers where the header is intact.
func WithLenientParsing() Option {
	return func(o *openOptions) {
		o.lenient = true
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// Example:
//
//	file, err := dcmcsv.Open("image.dcm", dcmcsv.WithStrictParsing())
//	// err != nil for an unknown transfer syntax or character set
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings discards all warnings.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
