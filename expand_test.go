package dcmcsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/dcmcsv"
)

func touch(t *testing.T, path string) string {
	t.Helper()

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestExpandInputs_DirectoryFilter(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.dcm"))
	touch(t, filepath.Join(dir, "b.txt"))
	c := touch(t, filepath.Join(dir, "c.dcm"))

	got, err := dcmcsv.ExpandInputs([]string{dir}, dcmcsv.DefaultExtension)
	require.NoError(t, err)
	assert.Equal(t, []string{a, c}, got)
}

func TestExpandInputs_ExtensionIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "upper.DCM"))
	touch(t, filepath.Join(dir, "noext"))
	lower := touch(t, filepath.Join(dir, "lower.dcm"))

	got, err := dcmcsv.ExpandInputs([]string{dir}, ".dcm")
	require.NoError(t, err)
	assert.Equal(t, []string{lower}, got)
}

func TestExpandInputs_NotRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "series.dcm")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, filepath.Join(sub, "nested.dcm"))
	top := touch(t, filepath.Join(dir, "top.dcm"))

	got, err := dcmcsv.ExpandInputs([]string{dir}, ".dcm")
	require.NoError(t, err)
	assert.Equal(t, []string{top}, got)
}

func TestExpandInputs_FilesKeptUnfiltered(t *testing.T) {
	dir := t.TempDir()
	img := touch(t, filepath.Join(dir, "IM000001"))
	txt := touch(t, filepath.Join(dir, "notes.txt"))

	got, err := dcmcsv.ExpandInputs([]string{txt, img}, ".dcm")
	require.NoError(t, err)
	assert.Equal(t, []string{txt, img}, got, "argument order is kept")
}

func TestExpandInputs_ArgumentOrderAcrossInputs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	b := touch(t, filepath.Join(second, "b.dcm"))
	a := touch(t, filepath.Join(first, "a.dcm"))
	single := touch(t, filepath.Join(t.TempDir(), "z.dcm"))

	got, err := dcmcsv.ExpandInputs([]string{second, single, first}, ".dcm")
	require.NoError(t, err)
	assert.Equal(t, []string{b, single, a}, got)
}

func TestExpandInputs_ExtensionWithoutDot(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.dcm"))

	got, err := dcmcsv.ExpandInputs([]string{dir}, "dcm")
	require.NoError(t, err)
	assert.Equal(t, []string{a}, got)
}

func TestExpandInputs_MissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := dcmcsv.ExpandInputs([]string{missing}, ".dcm")
	var ie *dcmcsv.InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, missing, ie.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpandInputs_Empty(t *testing.T) {
	got, err := dcmcsv.ExpandInputs([]string{t.TempDir()}, ".dcm")
	require.NoError(t, err)
	assert.Empty(t, got)
}
