package dcmcsv

import (
	"strings"

	"github.com/simonhull/dcmcsv/internal/parsing"
)

// Resolver turns user-supplied identifiers into tags and tags back into
// display names. It is read-only after construction and safe for concurrent
// use.
type Resolver struct {
	dict Dictionary
}

// NewResolver returns a resolver backed by d. A nil d uses the standard
// dictionary.
func NewResolver(d Dictionary) *Resolver {
	if d == nil {
		d = StandardDictionary()
	}
	return &Resolver{dict: d}
}

// Dictionary returns the dictionary the resolver was built with.
func (r *Resolver) Dictionary() Dictionary {
	return r.dict
}

// Resolve parses raw as a tag.
//
// Numeric forms are tried first: "ggggeeee", "gggg,eeee" and "(gggg,eeee)",
// each half exactly four hex digits in either case. Otherwise raw must be a
// dictionary keyword, matched exactly. Surrounding whitespace is ignored.
//
//	tag, err := r.Resolve("PatientName") // (0010,0010)
//	tag, err = r.Resolve("0010,0010")    // same tag
func (r *Resolver) Resolve(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if tag, ok := parsing.ParseNumericTag(s); ok {
		return tag, nil
	}
	if s != "" {
		if tag, ok := r.dict.ByName(s); ok {
			return tag, nil
		}
	}
	return Tag{}, &ResolutionError{Input: raw}
}

// DisplayName returns the dictionary keyword for tag, or its "(GGGG,EEEE)"
// form when the dictionary has no entry.
func (r *Resolver) DisplayName(tag Tag) string {
	if e, ok := r.dict.ByTag(tag); ok && e.Alias != "" {
		return e.Alias
	}
	return tag.String()
}
