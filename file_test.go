package dcmcsv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/dcmcsv"
	"github.com/simonhull/dcmcsv/internal/dicomtest"
)

func text(t *testing.T, f *dcmcsv.File, tag dcmcsv.Tag) string {
	t.Helper()

	el, ok := f.Get(tag)
	require.True(t, ok, "element %s not found", tag)
	s, err := el.Text()
	require.NoError(t, err)
	return s
}

func TestOpen_Basic(t *testing.T) {
	path := dicomtest.Patient("John^Doe", "PID-7").
		US(dcmcsv.NewTag(0x0028, 0x0010), 512).
		PixelData(128).
		WriteFile(t, t.TempDir(), "a.dcm")

	f, err := dcmcsv.Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Path)
	assert.Equal(t, dcmcsv.ExplicitVRLittleEndian, f.TransferSyntax.UID)
	assert.Equal(t, "John^Doe", text(t, f, patientName))
	assert.Equal(t, "512", text(t, f, dcmcsv.NewTag(0x0028, 0x0010)))

	_, ok := f.Get(dcmcsv.TagPixelData)
	assert.False(t, ok, "decoding stops at PixelData by default")

	n := 0
	for range f.Elements() {
		n++
	}
	assert.Equal(t, f.Len(), n)
}

func TestOpen_WithoutReadUntil(t *testing.T) {
	path := dicomtest.Patient("John^Doe", "").PixelData(16).WriteFile(t, t.TempDir(), "a.dcm")

	f, err := dcmcsv.Open(path, dcmcsv.WithoutReadUntil())
	require.NoError(t, err)
	defer f.Close()

	px, ok := f.Get(dcmcsv.TagPixelData)
	require.True(t, ok)
	assert.EqualValues(t, 16, px.Length)
	_, err = px.Text()
	assert.ErrorIs(t, err, dcmcsv.ErrNotText)
}

func TestOpen_ImplicitUsesDictionary(t *testing.T) {
	private := dcmcsv.NewTag(0x0029, 0x1010)
	path := dicomtest.New().
		TransferSyntax(dcmcsv.ImplicitVRLittleEndian).
		String(private, "LO", "protocol A").
		WriteFile(t, t.TempDir(), "a.dcm")

	// Unknown to the standard dictionary, the private element decodes as UN
	// and its ASCII value is still readable.
	f, err := dcmcsv.Open(path)
	require.NoError(t, err)
	el, ok := f.Get(private)
	require.True(t, ok)
	assert.Equal(t, dcmcsv.VR("UN"), el.VR)
	assert.Equal(t, "protocol A", text(t, f, private))
	f.Close()

	d := dcmcsv.NewDictionary([]dcmcsv.DictEntry{{Tag: private, VR: "LO", Alias: "VendorProtocol"}})
	f, err = dcmcsv.Open(path, dcmcsv.WithDictionary(d))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "protocol A", text(t, f, private))
}

func TestOpen_CharsetFallback(t *testing.T) {
	path := dicomtest.New().
		Raw(patientName, "PN", []byte{'J', 0xF6, 'r', 'g'}).
		WriteFile(t, t.TempDir(), "a.dcm")

	f, err := dcmcsv.Open(path, dcmcsv.WithCharsetFallback("ISO_IR 100"))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Jörg", text(t, f, patientName))

	_, err = dcmcsv.Open(path, dcmcsv.WithCharsetFallback("ISO_IR 999"))
	assert.ErrorContains(t, err, "ISO_IR 999")
}

func TestOpen_StrictAndIgnoreWarnings(t *testing.T) {
	path := dicomtest.Patient("Doe", "").TransferSyntax("1.2.3.4.5").WriteFile(t, t.TempDir(), "a.dcm")

	f, err := dcmcsv.Open(path)
	require.NoError(t, err)
	assert.NotEmpty(t, f.Warnings)
	f.Close()

	_, err = dcmcsv.Open(path, dcmcsv.WithStrictParsing())
	assert.ErrorContains(t, err, "strict parsing failed")

	f, err = dcmcsv.Open(path, dcmcsv.WithIgnoreWarnings())
	require.NoError(t, err)
	assert.Empty(t, f.Warnings)
	f.Close()
}

func TestOpen_Lenient(t *testing.T) {
	data := dicomtest.Patient("John^Doe", "PID").
		String(dcmcsv.NewTag(0x0020, 0x000D), "UI", "1.2.840.113619.2.55.3.604688119").
		Bytes()
	path := filepath.Join(t.TempDir(), "cut.dcm")
	require.NoError(t, os.WriteFile(path, data[:len(data)-6], 0o644))

	_, err := dcmcsv.Open(path)
	var ce *dcmcsv.CorruptedFileError
	require.ErrorAs(t, err, &ce)

	f, err := dcmcsv.Open(path, dcmcsv.WithLenientParsing())
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "John^Doe", text(t, f, patientName))
	assert.NotEmpty(t, f.Warnings)
}

func TestOpen_NotDICOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.dcm")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	_, err := dcmcsv.Open(path)
	var ufe *dcmcsv.UnsupportedFormatError
	assert.ErrorAs(t, err, &ufe)
}

func TestOpenContext_Cancelled(t *testing.T) {
	path := dicomtest.Patient("Doe", "").WriteFile(t, t.TempDir(), "a.dcm")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dcmcsv.OpenContext(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileDecoder_AppliesBoundary(t *testing.T) {
	path := dicomtest.Patient("John^Doe", "PID").WriteFile(t, t.TempDir(), "a.dcm")

	dec := dcmcsv.FileDecoder{Options: []dcmcsv.Option{dcmcsv.WithoutReadUntil()}}
	ds, err := dec.Open(context.Background(), path, patientID)
	require.NoError(t, err)
	defer ds.Close()

	_, ok := ds.Get(patientName)
	assert.True(t, ok)
	_, ok = ds.Get(patientID)
	assert.False(t, ok, "the boundary passed to Open wins over earlier options")
}
