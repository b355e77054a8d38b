package dcmcsv

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension is the file extension kept when expanding directories.
const DefaultExtension = ".dcm"

// ExpandInputs turns input paths into the ordered list of files to process.
//
// A directory contributes its direct entries that are regular files with
// extension ext, compared exactly (".dcm" does not match "x.DCM"), in
// directory listing order. A regular file is kept as given, whatever its
// extension. Any other path fails with *InvalidInputError.
//
// An empty result is not an error.
func ExpandInputs(paths []string, ext string) ([]string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &InvalidInputError{Path: path, Reason: "cannot stat path", Err: err}
		}

		switch {
		case info.Mode().IsRegular():
			files = append(files, path)
		case info.IsDir():
			found, err := expandDir(path, ext)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		default:
			return nil, &InvalidInputError{Path: path, Reason: "not a regular file or directory"}
		}
	}
	return files, nil
}

func expandDir(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &InvalidInputError{Path: dir, Reason: "cannot read directory", Err: err}
	}

	var files []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !isRegular(e, path) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// isRegular reports whether the entry is a regular file, following symlinks.
func isRegular(e fs.DirEntry, path string) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
