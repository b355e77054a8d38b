package dcmcsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/dcmcsv"
	"github.com/simonhull/dcmcsv/internal/dict"
)

func TestResolve_NumericFormsAgree(t *testing.T) {
	r := dcmcsv.NewResolver(nil)
	want := dcmcsv.NewTag(0x0010, 0x0010)

	for _, raw := range []string{"00100010", "0010,0010", "(0010,0010)", "  (0010,0010)\t"} {
		got, err := r.Resolve(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestResolve_Keyword(t *testing.T) {
	r := dcmcsv.NewResolver(nil)

	tag, err := r.Resolve("PatientID")
	require.NoError(t, err)
	assert.Equal(t, dcmcsv.NewTag(0x0010, 0x0020), tag)

	_, err = r.Resolve("patientid")
	var re *dcmcsv.ResolutionError
	require.ErrorAs(t, err, &re, "keyword lookup is case-sensitive")
	assert.Equal(t, "patientid", re.Input)
}

func TestResolve_Failures(t *testing.T) {
	r := dcmcsv.NewResolver(nil)

	for _, raw := range []string{"", "   ", "NotAKeyword", "0010-0010", "10,10", "(0010,0010"} {
		_, err := r.Resolve(raw)
		var re *dcmcsv.ResolutionError
		assert.ErrorAs(t, err, &re, "%q should not resolve", raw)
	}
}

func TestResolve_NumericBeforeKeyword(t *testing.T) {
	// A keyword spelled like a numeric tag never shadows the numeric reading.
	d := dcmcsv.NewDictionary([]dcmcsv.DictEntry{
		{Tag: dcmcsv.NewTag(0x0009, 0x0001), VR: "LO", Alias: "00100010"},
	})
	r := dcmcsv.NewResolver(d)

	tag, err := r.Resolve("00100010")
	require.NoError(t, err)
	assert.Equal(t, dcmcsv.NewTag(0x0010, 0x0010), tag)
}

func TestDisplayName_InvertsKeywordResolution(t *testing.T) {
	r := dcmcsv.NewResolver(nil)

	n := 0
	for e := range dict.Standard().All() {
		tag, err := r.Resolve(e.Alias)
		require.NoError(t, err, e.Alias)
		assert.Equal(t, e.Alias, r.DisplayName(tag))
		n++
	}
	assert.Positive(t, n)
}

func TestDisplayName_UnknownTag(t *testing.T) {
	r := dcmcsv.NewResolver(nil)

	assert.Equal(t, "(0029,1010)", r.DisplayName(dcmcsv.NewTag(0x0029, 0x1010)))
	assert.Equal(t, "(7FE1,00AB)", r.DisplayName(dcmcsv.NewTag(0x7FE1, 0x00AB)))
}

func TestResolver_CustomDictionary(t *testing.T) {
	private := dcmcsv.NewTag(0x0029, 0x1010)
	r := dcmcsv.NewResolver(dcmcsv.NewDictionary([]dcmcsv.DictEntry{
		{Tag: private, VR: "LO", Alias: "VendorProtocol"},
	}))

	tag, err := r.Resolve("VendorProtocol")
	require.NoError(t, err)
	assert.Equal(t, private, tag)
	assert.Equal(t, "VendorProtocol", r.DisplayName(tag))

	_, err = r.Resolve("PatientName")
	assert.Error(t, err, "standard keywords are not known to a custom dictionary")
}
