package dcmcsv

import (
	"github.com/simonhull/dcmcsv/internal/dict"
	"github.com/simonhull/dcmcsv/internal/types"
)

// DictEntry is an alias to dict.Entry: a tag with its VR and keyword alias.
type DictEntry = dict.Entry

// Dictionary looks attributes up by keyword and by tag.
//
// Implementations must be safe for concurrent use; the resolver and the
// decoder share one dictionary across all workers.
type Dictionary interface {
	// ByName returns the tag for an exact, case-sensitive keyword.
	ByName(name string) (Tag, bool)

	// ByTag returns the entry for tag.
	ByTag(tag Tag) (DictEntry, bool)
}

// StandardDictionary returns the built-in dictionary of standard attributes.
func StandardDictionary() Dictionary {
	return dict.Standard()
}

// NewDictionary builds a dictionary from entries, for private or versioned
// attribute sets.
func NewDictionary(entries []DictEntry) Dictionary {
	return dict.New(entries)
}

// vrLookup adapts a Dictionary to the decoder's VR lookup for implicitly
// encoded datasets.
type vrLookup struct {
	d Dictionary
}

func (l vrLookup) VR(tag Tag) types.VR {
	if e, ok := l.d.ByTag(tag); ok && e.VR != "" {
		return e.VR
	}
	if tag.IsGroupLength() {
		return types.VRUL
	}
	return types.VRUN
}
