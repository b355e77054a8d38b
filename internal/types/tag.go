package types

import (
	"cmp"
	"fmt"
)

// Tag identifies a data element by its (group, element) pair.
//
// Tag is a comparable value type and is used directly as a map key.
type Tag struct {
	Group   uint16
	Element uint16
}

// NewTag returns the tag (group, element).
func NewTag(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// TagFromUint32 splits a packed ggggeeee value into a Tag.
func TagFromUint32(v uint32) Tag {
	return Tag{Group: uint16(v >> 16), Element: uint16(v)}
}

// Uint32 packs the tag as ggggeeee. Packed values sort in DICOM stream order.
func (t Tag) Uint32() uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}

// Compare orders tags the way they appear in a dataset.
func (t Tag) Compare(o Tag) int {
	return cmp.Compare(t.Uint32(), o.Uint32())
}

// String returns the canonical "(GGGG,EEEE)" form.
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// IsPrivate reports whether the tag belongs to an odd (private) group.
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsPrivateCreator reports whether the tag reserves a private block,
// (gggg,0010) through (gggg,00FF) in an odd group. Its VR is always LO.
func (t Tag) IsPrivateCreator() bool {
	return t.IsPrivate() && t.Element >= 0x0010 && t.Element <= 0x00FF
}

// IsGroupLength reports whether the tag is a (gggg,0000) group length element.
func (t Tag) IsGroupLength() bool {
	return t.Element == 0x0000
}

// IsMeta reports whether the tag belongs to the file meta information group.
func (t Tag) IsMeta() bool {
	return t.Group == 0x0002
}

// Well-known tags the decoder needs to recognise structurally.
var (
	TagFileMetaGroupLength    = Tag{0x0002, 0x0000}
	TagTransferSyntaxUID      = Tag{0x0002, 0x0010}
	TagSpecificCharacterSet   = Tag{0x0008, 0x0005}
	TagPixelData              = Tag{0x7FE0, 0x0010}
	TagItem                   = Tag{0xFFFE, 0xE000}
	TagItemDelimitation       = Tag{0xFFFE, 0xE00D}
	TagSequenceDelimitation   = Tag{0xFFFE, 0xE0DD}
	TagMediaStorageSOPClass   = Tag{0x0002, 0x0002}
	TagMediaStorageSOPInst    = Tag{0x0002, 0x0003}
	TagImplementationClassUID = Tag{0x0002, 0x0012}
)

// UndefinedLength marks a value whose length is given by delimitation items.
const UndefinedLength uint32 = 0xFFFFFFFF
