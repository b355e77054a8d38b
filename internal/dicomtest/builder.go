// Package dicomtest builds small synthetic DICOM Part 10 files for tests,
// benchmarks and examples.
package dicomtest

import (
	"bytes"
	"compress/flate"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/dcmcsv/internal/binary"
	"github.com/simonhull/dcmcsv/internal/types"
)

type element struct {
	tag       types.Tag
	vr        types.VR
	encode    func(order binary.Endianness) []byte
	items     []*Builder
	undefined bool
}

// Builder accumulates dataset elements and renders a Part 10 file.
// Elements are written in the order they are added.
type Builder struct {
	transferSyntax string
	elements       []element
}

// New returns a builder for an Explicit VR Little Endian file.
func New() *Builder {
	return &Builder{transferSyntax: types.ExplicitVRLittleEndian}
}

// TransferSyntax sets the dataset transfer syntax UID.
func (b *Builder) TransferSyntax(uid string) *Builder {
	b.transferSyntax = uid
	return b
}

// String adds a character-valued element, padded to even length.
func (b *Builder) String(tag types.Tag, vr types.VR, s string) *Builder {
	return b.Raw(tag, vr, pad([]byte(s), vr))
}

// Raw adds an element with a verbatim value.
func (b *Builder) Raw(tag types.Tag, vr types.VR, value []byte) *Builder {
	v := bytes.Clone(value)
	b.elements = append(b.elements, element{
		tag:    tag,
		vr:     vr,
		encode: func(binary.Endianness) []byte { return v },
	})
	return b
}

// US adds an unsigned short element in the dataset byte order.
func (b *Builder) US(tag types.Tag, vals ...uint16) *Builder {
	b.elements = append(b.elements, element{
		tag: tag,
		vr:  types.VRUS,
		encode: func(order binary.Endianness) []byte {
			out := make([]byte, 0, 2*len(vals))
			for _, v := range vals {
				out = order.ByteOrder().AppendUint16(out, v)
			}
			return out
		},
	})
	return b
}

// UL adds an unsigned long element in the dataset byte order.
func (b *Builder) UL(tag types.Tag, vals ...uint32) *Builder {
	b.elements = append(b.elements, element{
		tag: tag,
		vr:  types.VRUL,
		encode: func(order binary.Endianness) []byte {
			out := make([]byte, 0, 4*len(vals))
			for _, v := range vals {
				out = order.ByteOrder().AppendUint32(out, v)
			}
			return out
		},
	})
	return b
}

// Sequence adds an SQ element whose items are the given builders' elements.
// With undefined set, the sequence and its items use delimiters.
func (b *Builder) Sequence(tag types.Tag, undefined bool, items ...*Builder) *Builder {
	b.elements = append(b.elements, element{
		tag:       tag,
		vr:        types.VRSQ,
		items:     items,
		undefined: undefined,
	})
	return b
}

// PixelData adds native pixel data of n zero bytes.
func (b *Builder) PixelData(n int) *Builder {
	return b.Raw(types.TagPixelData, types.VROW, make([]byte, n))
}

// EncapsulatedPixelData adds undefined-length OB pixel data with an empty
// offset table and one fragment per argument.
func (b *Builder) EncapsulatedPixelData(fragments ...[]byte) *Builder {
	items := []*Builder{{}}
	for _, f := range fragments {
		items = append(items, (&Builder{}).Raw(types.Tag{}, types.VROB, f))
	}
	b.elements = append(b.elements, element{
		tag:       types.TagPixelData,
		vr:        types.VROB,
		items:     items,
		undefined: true,
	})
	return b
}

// Bytes renders the complete file: preamble, file meta group and dataset.
func (b *Builder) Bytes() []byte {
	ts := b.transferSyntax
	explicit := ts != types.ImplicitVRLittleEndian
	order := binary.LittleEndian
	if ts == types.ExplicitVRBigEndian {
		order = binary.BigEndian
	}

	meta := &bytes.Buffer{}
	mw := binary.NewWriter(meta, binary.LittleEndian)
	writeElement(mw, types.NewTag(0x0002, 0x0001), types.VROB, []byte{0x00, 0x01}, true)
	writeElement(mw, types.TagMediaStorageSOPClass, types.VRUI, pad([]byte("1.2.840.10008.5.1.4.1.1.7"), types.VRUI), true)
	writeElement(mw, types.TagMediaStorageSOPInst, types.VRUI, pad([]byte("1.2.826.0.1.3680043.2.1125.1"), types.VRUI), true)
	writeElement(mw, types.TagTransferSyntaxUID, types.VRUI, pad([]byte(ts), types.VRUI), true)
	writeElement(mw, types.TagImplementationClassUID, types.VRUI, pad([]byte("1.2.826.0.1.3680043.2.1125.9"), types.VRUI), true)

	body := &bytes.Buffer{}
	bw := binary.NewWriter(body, order)
	b.writeElements(bw, explicit, order)

	dataset := body.Bytes()
	if ts == types.DeflatedExplicitVRLittleEndian {
		dataset = deflate(dataset)
	}

	out := &bytes.Buffer{}
	w := binary.NewWriter(out, binary.LittleEndian)
	w.Bytes(make([]byte, 128))
	w.String("DICM")
	groupLength := make([]byte, 4)
	binary.LittleEndian.ByteOrder().PutUint32(groupLength, uint32(meta.Len()))
	writeElement(w, types.TagFileMetaGroupLength, types.VRUL, groupLength, true)
	w.Bytes(meta.Bytes())
	w.Bytes(dataset)
	return out.Bytes()
}

func (b *Builder) writeElements(w *binary.Writer, explicit bool, order binary.Endianness) {
	for _, el := range b.elements {
		if el.vr == types.VRSQ || el.items != nil {
			writeSequence(w, el, explicit, order)
			continue
		}
		writeElement(w, el.tag, el.vr, el.encode(order), explicit)
	}
}

func writeSequence(w *binary.Writer, el element, explicit bool, order binary.Endianness) {
	content := &bytes.Buffer{}
	cw := binary.NewWriter(content, order)
	fragments := el.vr != types.VRSQ

	for _, item := range el.items {
		itemBody := &bytes.Buffer{}
		if fragments {
			for _, f := range item.elements {
				itemBody.Write(f.encode(order))
			}
		} else {
			item.writeElements(binary.NewWriter(itemBody, order), explicit, order)
		}

		cw.Uint16(types.TagItem.Group)
		cw.Uint16(types.TagItem.Element)
		if el.undefined && !fragments {
			cw.Uint32(types.UndefinedLength)
			cw.Bytes(itemBody.Bytes())
			cw.Uint16(types.TagItemDelimitation.Group)
			cw.Uint16(types.TagItemDelimitation.Element)
			cw.Uint32(0)
		} else {
			cw.Uint32(uint32(itemBody.Len()))
			cw.Bytes(itemBody.Bytes())
		}
	}

	if el.undefined {
		cw.Uint16(types.TagSequenceDelimitation.Group)
		cw.Uint16(types.TagSequenceDelimitation.Element)
		cw.Uint32(0)
		writeHeader(w, el.tag, el.vr, types.UndefinedLength, explicit)
	} else {
		writeHeader(w, el.tag, el.vr, uint32(content.Len()), explicit)
	}
	w.Bytes(content.Bytes())
}

func writeElement(w *binary.Writer, tag types.Tag, vr types.VR, value []byte, explicit bool) {
	writeHeader(w, tag, vr, uint32(len(value)), explicit)
	w.Bytes(value)
}

func writeHeader(w *binary.Writer, tag types.Tag, vr types.VR, length uint32, explicit bool) {
	w.Uint16(tag.Group)
	w.Uint16(tag.Element)
	if !explicit {
		w.Uint32(length)
		return
	}
	w.String(string(vr))
	if vr.HasLongLength() {
		w.Uint16(0)
		w.Uint32(length)
		return
	}
	w.Uint16(uint16(length))
}

func pad(b []byte, vr types.VR) []byte {
	if len(b)%2 == 0 {
		return b
	}
	if vr == types.VRUI {
		return append(b, 0x00)
	}
	return append(b, ' ')
}

func deflate(b []byte) []byte {
	buf := &bytes.Buffer{}
	fw, _ := flate.NewWriter(buf, flate.DefaultCompression)
	fw.Write(b)
	fw.Close()
	return buf.Bytes()
}

// WriteFile renders the builder into dir/name and returns the path.
func (b *Builder) WriteFile(tb testing.TB, dir, name string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}

// Patient returns a builder with the usual patient and study attributes.
func Patient(name, id string) *Builder {
	b := New().
		String(types.TagSpecificCharacterSet, types.VRCS, "ISO_IR 100").
		String(types.NewTag(0x0008, 0x0060), types.VRCS, "MR").
		String(types.NewTag(0x0010, 0x0010), types.VRPN, name)
	if id != "" {
		b.String(types.NewTag(0x0010, 0x0020), types.VRLO, id)
	}
	return b
}
