package dcmcsv_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/dcmcsv"
	"github.com/simonhull/dcmcsv/internal/dicomtest"
)

// createBenchmarkFile writes a small but realistic file with 64 KiB of pixel
// data behind the read boundary.
func createBenchmarkFile(b *testing.B, dir string, i int) string {
	b.Helper()

	return dicomtest.Patient(fmt.Sprintf("Patient^%d", i), fmt.Sprintf("ID%04d", i)).
		String(dcmcsv.NewTag(0x0008, 0x103E), "LO", "T1 AXIAL").
		US(dcmcsv.NewTag(0x0028, 0x0010), 256).
		US(dcmcsv.NewTag(0x0028, 0x0011), 256).
		PixelData(64*1024).
		WriteFile(b, dir, fmt.Sprintf("bench%04d.dcm", i))
}

// BenchmarkOpen measures decoding a single header.
func BenchmarkOpen(b *testing.B) {
	path := createBenchmarkFile(b, b.TempDir(), 0)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		file, err := dcmcsv.Open(path)
		if err != nil {
			b.Fatal(err)
		}
		file.Close()
	}
}

// BenchmarkOpenContext measures the performance with context support.
func BenchmarkOpenContext(b *testing.B) {
	path := createBenchmarkFile(b, b.TempDir(), 0)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		file, err := dcmcsv.OpenContext(ctx, path)
		if err != nil {
			b.Fatal(err)
		}
		file.Close()
	}
}

// BenchmarkExtractMany measures batch extraction scalability.
func BenchmarkExtractMany(b *testing.B) {
	r := dcmcsv.NewResolver(nil)
	spec, err := dcmcsv.BuildTagSpec(r, []string{"PatientName", "PatientID", "SeriesDescription", "Rows"}, nil)
	if err != nil {
		b.Fatal(err)
	}

	for _, n := range []int{1, 10, 50} {
		b.Run(fmt.Sprintf("%02d_files", n), func(b *testing.B) {
			dir := b.TempDir()
			paths := make([]string, n)
			for i := range paths {
				paths[i] = createBenchmarkFile(b, dir, i)
			}
			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				results := dcmcsv.ExtractMany(ctx, paths, spec, dcmcsv.TagPixelData)
				if !results[0].OK() {
					b.Fatal(results[0].Err)
				}
			}
		})
	}
}

// BenchmarkResolve measures identifier resolution for both kinds of input.
func BenchmarkResolve(b *testing.B) {
	r := dcmcsv.NewResolver(nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.Resolve("PatientName"); err != nil {
			b.Fatal(err)
		}
		if _, err := r.Resolve("(0010,0020)"); err != nil {
			b.Fatal(err)
		}
	}
}
