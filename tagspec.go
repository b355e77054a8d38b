package dcmcsv

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"
)

// TagSpec is the ordered list of tags to extract. Its order is the column
// order of the output. Duplicates are kept and produce repeated columns.
//
// A TagSpec is immutable once built and may be shared by any number of
// workers.
type TagSpec struct {
	tags []Tag
}

// NewTagSpec returns a spec for tags, in order.
func NewTagSpec(tags ...Tag) TagSpec {
	return TagSpec{tags: slices.Clone(tags)}
}

// Len returns the number of requested tags.
func (s TagSpec) Len() int {
	return len(s.tags)
}

// Tags returns a copy of the requested tags.
func (s TagSpec) Tags() []Tag {
	return slices.Clone(s.tags)
}

// All iterates over the requested tags in column order.
func (s TagSpec) All() iter.Seq2[int, Tag] {
	return slices.All(s.tags)
}

// tagFileBOM is the UTF-8 byte order mark some editors prepend.
const tagFileBOM = "\uFEFF"

// BuildTagSpec resolves inline identifiers and then the lines of each tag
// file, preserving order.
//
// Tag files hold one identifier per line. Lines are trimmed; blank lines and
// lines starting with '#' are skipped. The first identifier that fails to
// resolve aborts the build with a *ResolutionError whose Source is "--tag"
// or "file:line". An unreadable tag file aborts with the I/O error.
//
// An empty spec is not an error.
func BuildTagSpec(r *Resolver, inline []string, tagFiles []string) (TagSpec, error) {
	var tags []Tag

	for _, raw := range inline {
		tag, err := resolveFrom(r, raw, "--tag")
		if err != nil {
			return TagSpec{}, err
		}
		tags = append(tags, tag)
	}

	for _, path := range tagFiles {
		fromFile, err := readTagFile(r, path)
		if err != nil {
			return TagSpec{}, err
		}
		tags = append(tags, fromFile...)
	}

	return TagSpec{tags: tags}, nil
}

func readTagFile(r *Resolver, path string) ([]Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read tag file: %w", err)
	}
	defer f.Close()

	var tags []Tag
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, tagFileBOM)
		}
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		tag, err := resolveFrom(r, text, fmt.Sprintf("%s:%d", path, line))
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tag file %s: %w", path, err)
	}
	return tags, nil
}

func resolveFrom(r *Resolver, raw, source string) (Tag, error) {
	tag, err := r.Resolve(raw)
	if err != nil {
		var re *ResolutionError
		if errors.As(err, &re) {
			re.Source = source
		}
		return Tag{}, err
	}
	return tag, nil
}
