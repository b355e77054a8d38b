package dcmcsv

import (
	"github.com/simonhull/dcmcsv/internal/types"
)

// Tag is an alias to types.Tag, the (group, element) pair identifying a field.
type Tag = types.Tag

// VR is an alias to types.VR.
type VR = types.VR

// Element is an alias to types.Element, one decoded data element.
type Element = types.Element

// NewTag returns the tag (group, element).
func NewTag(group, element uint16) Tag {
	return types.NewTag(group, element)
}

// TagPixelData is the conventional read boundary: everything before it is
// metadata.
var TagPixelData = types.TagPixelData

// ErrNotText is returned by Element.Text for sequences and bulk binary values.
var ErrNotText = types.ErrNotText
