// Package types provides the core data structures shared by the decoder,
// the dictionary and the extraction pipeline.
package types

import "iter"

// Dataset is the decoded content of a DICOM file up to the read boundary.
//
// Elements keeps file order; Get looks elements up by tag. Nested sequence
// items are not indexed.
type Dataset struct {
	Path           string
	TransferSyntax TransferSyntax
	Warnings       []Warning

	elements []Element
	index    map[Tag]int
}

// NewDataset creates an empty dataset for path.
func NewDataset(path string) *Dataset {
	return &Dataset{
		Path:  path,
		index: make(map[Tag]int),
	}
}

// Add appends an element. A repeated tag keeps the first occurrence and
// reports false.
func (d *Dataset) Add(el Element) bool {
	if _, dup := d.index[el.Tag]; dup {
		return false
	}
	d.index[el.Tag] = len(d.elements)
	d.elements = append(d.elements, el)
	return true
}

// Get returns the element for tag.
func (d *Dataset) Get(tag Tag) (*Element, bool) {
	i, ok := d.index[tag]
	if !ok {
		return nil, false
	}
	return &d.elements[i], true
}

// Len returns the number of top-level elements.
func (d *Dataset) Len() int {
	return len(d.elements)
}

// All returns an iterator over elements in file order.
func (d *Dataset) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for i := range d.elements {
			if !yield(&d.elements[i]) {
				return
			}
		}
	}
}

// Warn records a non-fatal decoding issue.
func (d *Dataset) Warn(stage, message string, offset int64) {
	d.Warnings = append(d.Warnings, Warning{Stage: stage, Message: message, Offset: offset})
}
