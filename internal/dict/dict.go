// Package dict provides the DICOM data dictionary used to name columns and to
// recover value representations of implicitly encoded elements.
package dict

import (
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/simonhull/dcmcsv/internal/types"
)

// Entry describes one attribute of the data dictionary.
type Entry struct {
	Tag   types.Tag
	VR    types.VR
	Alias string // keyword, e.g. "PatientName"
}

// Table is an immutable dictionary indexed by tag and by keyword.
// It is safe for concurrent use.
type Table struct {
	byTag  map[types.Tag]Entry
	byName map[string]Entry
}

// New builds a table from entries. Later entries replace earlier ones with
// the same tag or keyword.
func New(entries []Entry) *Table {
	t := &Table{
		byTag:  make(map[types.Tag]Entry, len(entries)),
		byName: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		t.byTag[e.Tag] = e
		if e.Alias != "" {
			t.byName[e.Alias] = e
		}
	}
	return t
}

// ByName looks up a keyword. Matching is exact and case-sensitive.
func (t *Table) ByName(name string) (types.Tag, bool) {
	e, ok := t.byName[name]
	return e.Tag, ok
}

// ByTag looks up the entry for tag.
func (t *Table) ByTag(tag types.Tag) (Entry, bool) {
	e, ok := t.byTag[tag]
	return e, ok
}

// VR returns the dictionary VR for tag. Group lengths are UL, anything
// unknown is UN.
func (t *Table) VR(tag types.Tag) types.VR {
	if e, ok := t.byTag[tag]; ok {
		return e.VR
	}
	if tag.IsGroupLength() {
		return types.VRUL
	}
	return types.VRUN
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.byTag)
}

// All iterates over the entries in tag order.
func (t *Table) All() iter.Seq[Entry] {
	tags := slices.SortedFunc(maps.Keys(t.byTag), types.Tag.Compare)
	return func(yield func(Entry) bool) {
		for _, tag := range tags {
			if !yield(t.byTag[tag]) {
				return
			}
		}
	}
}

// Standard returns the built-in dictionary of standard attributes.
var Standard = sync.OnceValue(func() *Table {
	return New(standardEntries)
})
