// Package dcmcsv extracts selected DICOM metadata fields from batches of
// Part 10 files into CSV, one row per file.
//
// # Quick Start
//
// Resolve the requested fields, extract them from every file concurrently,
// and write the table:
//
//	r := dcmcsv.NewResolver(nil) // standard dictionary
//	spec, err := dcmcsv.BuildTagSpec(r, []string{"PatientName", "0010,0020"}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	paths, err := dcmcsv.ExpandInputs([]string{"study/"}, dcmcsv.DefaultExtension)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results := dcmcsv.ExtractMany(ctx, paths, spec, dcmcsv.TagPixelData)
//	table := dcmcsv.Assemble(results, spec, r)
//	table.WriteCSV(os.Stdout)
//
// # Identifiers
//
// A field may be named by its dictionary keyword ("PatientName", matched
// case-sensitively) or numerically as "00100010", "0010,0010" or
// "(0010,0010)". Columns are headed by the keyword when the dictionary knows
// the tag and by "(GGGG,EEEE)" otherwise.
//
// # Decoding
//
// Open reads the 128-byte preamble, the file meta group and the dataset up
// to a boundary tag, PixelData by default, so pixel buffers are never read.
// Implicit and explicit VR little endian, explicit VR big endian and deflated
// datasets are supported; encapsulated (compressed) transfer syntaxes decode
// their metadata as explicit VR little endian. Text honours the Specific
// Character Set (0008,0005).
//
// Only top-level elements can be extracted. Sequences, pixel data and other
// bulk binary values have no text form and yield empty cells.
//
// # Error Handling
//
// Errors before extraction are fatal: *ResolutionError for an identifier
// that cannot be resolved, *InvalidInputError for an input path that is
// neither a file nor a directory.
//
// Per-file failures are not. ExtractMany records an *OpenError in the
// file's Result and carries on; Assemble moves failures to Table.Failures.
// Fields absent from a file produce empty cells.
//
// Non-fatal decoding issues (unknown transfer syntax, unknown character set,
// duplicated elements) are collected as warnings:
//
//	for _, w := range file.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// # Concurrency
//
// ExtractMany runs one task per file on a bounded pool (WithJobs, default
// runtime.NumCPU()). TagSpec, Resolver and Dictionary are read-only and
// shared; every worker owns its file handle. Output order always matches
// input order.
package dcmcsv
