// Package dicom decodes DICOM Part 10 files into flat datasets of top-level
// elements, stopping at a caller-chosen boundary tag.
package dicom

import (
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/dcmcsv/internal/binary"
	"github.com/simonhull/dcmcsv/internal/charset"
	"github.com/simonhull/dcmcsv/internal/types"
)

const (
	preambleSize = 128
	magic        = "DICM"

	// datasetStart is the offset of the first file meta element.
	datasetStart = preambleSize + len(magic)

	// maxNesting bounds sequence recursion on hostile input.
	maxNesting = 64

	// maxUNValue is the largest UN value loaded so it can be shown as text.
	maxUNValue = 4096
)

// VRLookup supplies value representations for implicitly encoded elements.
type VRLookup interface {
	VR(tag types.Tag) types.VR
}

// Options controls decoding.
type Options struct {
	// ReadUntil stops decoding before the first top-level element whose tag
	// is greater than or equal to it. Ignored when HasBoundary is false.
	ReadUntil   types.Tag
	HasBoundary bool

	// Dictionary resolves VRs for Implicit VR Little Endian datasets.
	Dictionary VRLookup

	// Charset is used for text values when the dataset has no Specific
	// Character Set element.
	Charset charset.Decoder

	// Lenient keeps the elements decoded so far when the dataset turns out
	// to be malformed, recording a warning instead of failing.
	Lenient bool
}

// DetectPart10 verifies the 128-byte preamble followed by "DICM".
func DetectPart10(r io.ReaderAt, size int64, path string) error {
	if size < int64(datasetStart) {
		return &types.UnsupportedFormatError{
			Path:   path,
			Reason: "file too small for a DICOM preamble",
		}
	}

	sr := binary.NewSafeReader(r, size, path)
	buf := make([]byte, len(magic))
	if err := sr.ReadAt(buf, preambleSize, "DICM prefix"); err != nil {
		return &types.UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}
	if string(buf) != magic {
		return &types.UnsupportedFormatError{
			Path:   path,
			Reason: "missing DICM prefix after preamble",
		}
	}
	return nil
}

// Parse decodes the file meta group and the dataset that follows it.
func Parse(r io.ReaderAt, size int64, path string, opts Options) (*types.Dataset, error) {
	if err := DetectPart10(r, size, path); err != nil {
		return nil, err
	}

	p := &parser{
		opts:    opts,
		ds:      types.NewDataset(path),
		charset: opts.Charset,
	}

	sr := binary.NewSafeReader(r, size, path)
	c := binary.NewCursor(sr, int64(datasetStart), binary.LittleEndian)

	stopped, err := p.parseMeta(c)
	if err != nil {
		return nil, err
	}
	if stopped {
		return p.ds, nil
	}

	if p.ds.TransferSyntax.Deflated {
		inflated, err := inflate(sr, c.Offset())
		if err != nil {
			return nil, &types.CorruptedFileError{
				Path:   path,
				Offset: c.Offset(),
				Reason: fmt.Sprintf("inflate deflated dataset: %v", err),
			}
		}
		c = binary.NewCursor(binary.NewSafeReader(bytes.NewReader(inflated), int64(len(inflated)), path), 0, binary.LittleEndian)
	}

	c.SetOrder(p.ds.TransferSyntax.Order)
	if err := p.parseDataset(c); err != nil {
		if !opts.Lenient {
			return nil, err
		}
		p.ds.Warn("dataset", fmt.Sprintf("stopped decoding: %v", err), c.Offset())
	}

	return p.ds, nil
}

type parser struct {
	opts    Options
	ds      *types.Dataset
	charset charset.Decoder
}

// parseMeta reads group 0002, always Explicit VR Little Endian, and selects
// the dataset transfer syntax. It reports whether the boundary was reached.
func (p *parser) parseMeta(c *binary.Cursor) (bool, error) {
	var uid string
	for c.Remaining() >= 4 {
		start := c.Offset()
		tag, err := readTag(c)
		if err != nil {
			return false, p.corrupted(c, err)
		}
		if !tag.IsMeta() {
			c.Seek(start)
			break
		}
		if p.reachedBoundary(tag) {
			return true, nil
		}

		el, err := p.readElement(c, tag, true)
		if err != nil {
			return false, err
		}
		if tag == types.TagTransferSyntaxUID {
			uid, _ = el.Text()
		}
		p.add(el)
	}

	if uid == "" {
		p.ds.Warn("meta", "no transfer syntax UID, assuming Explicit VR Little Endian", c.Offset())
		uid = types.ExplicitVRLittleEndian
	}

	ts, known := lookupTransferSyntax(uid)
	if !known {
		p.ds.Warn("meta", fmt.Sprintf("unknown transfer syntax %s, decoding as Explicit VR Little Endian", uid), 0)
	}
	p.ds.TransferSyntax = ts
	return false, nil
}

func (p *parser) parseDataset(c *binary.Cursor) error {
	explicit := p.ds.TransferSyntax.Explicit

	for c.Remaining() > 0 {
		if c.Remaining() < 4 {
			p.ds.Warn("dataset", fmt.Sprintf("ignoring %d trailing bytes", c.Remaining()), c.Offset())
			return nil
		}

		start := c.Offset()
		tag, err := readTag(c)
		if err != nil {
			return p.corrupted(c, err)
		}
		if p.reachedBoundary(tag) {
			c.Seek(start)
			return nil
		}
		if tag.Group == 0xFFFE {
			return &types.CorruptedFileError{
				Path:   p.ds.Path,
				Offset: start,
				Reason: fmt.Sprintf("unexpected delimiter %s at top level", tag),
			}
		}

		el, err := p.readElement(c, tag, explicit)
		if err != nil {
			return err
		}

		if tag == types.TagSpecificCharacterSet {
			raw, _ := el.Text()
			cs, err := charset.Parse(raw)
			if err != nil {
				p.ds.Warn("charset", err.Error(), el.Offset)
			}
			p.charset = cs
		}
		p.add(el)
	}
	return nil
}

func (p *parser) add(el types.Element) {
	if !p.ds.Add(el) {
		p.ds.Warn("dataset", fmt.Sprintf("duplicate element %s ignored", el.Tag), el.Offset)
	}
}

func (p *parser) reachedBoundary(tag types.Tag) bool {
	return p.opts.HasBoundary && tag.Compare(p.opts.ReadUntil) >= 0
}

// readElement reads the VR, length and value of an element whose tag has
// already been consumed.
func (p *parser) readElement(c *binary.Cursor, tag types.Tag, explicit bool) (types.Element, error) {
	vr, length, err := p.readHeader(c, tag, explicit)
	if err != nil {
		return types.Element{}, p.corrupted(c, err)
	}

	el := types.Element{
		Tag:     tag,
		VR:      vr,
		Offset:  c.Offset(),
		Length:  length,
		Order:   c.Order(),
		Charset: p.charset,
	}

	if length == types.UndefinedLength {
		// UN of undefined length is a sequence encoded Implicit VR Little Endian.
		itemsExplicit := explicit
		if vr == types.VRUN {
			el.VR = types.VRSQ
			itemsExplicit = false
		}
		if vr != types.VRSQ && vr != types.VRUN && !vr.IsBulk() {
			return el, &types.CorruptedFileError{
				Path:   p.ds.Path,
				Offset: el.Offset,
				Reason: fmt.Sprintf("undefined length on %s element %s", vr, tag),
			}
		}
		if err := p.skipSequence(c, itemsExplicit, 0); err != nil {
			return el, err
		}
		return el, nil
	}

	if int64(length) > c.Remaining() {
		return el, &types.CorruptedFileError{
			Path:   p.ds.Path,
			Offset: el.Offset,
			Reason: fmt.Sprintf("value length %d of %s exceeds remaining %d bytes", length, tag, c.Remaining()),
		}
	}

	if vr == types.VRSQ || vr.IsBulk() && !(vr == types.VRUN && length <= maxUNValue) {
		c.Skip(int64(length))
		return el, nil
	}

	el.Value, err = c.Bytes(int64(length), "value of "+tag.String())
	if err != nil {
		return el, p.corrupted(c, err)
	}
	return el, nil
}

// readHeader reads the VR (explicit only) and value length.
func (p *parser) readHeader(c *binary.Cursor, tag types.Tag, explicit bool) (types.VR, uint32, error) {
	if !explicit {
		length, err := c.Uint32("element length")
		if err != nil {
			return "", 0, err
		}
		return p.implicitVR(tag), length, nil
	}

	code, err := c.String(2, "VR")
	if err != nil {
		return "", 0, err
	}
	vr := types.VR(code)
	if !vr.Valid() {
		return "", 0, fmt.Errorf("invalid VR %q for %s", code, tag)
	}

	if vr.HasLongLength() {
		c.Skip(2) // reserved
		length, err := c.Uint32("element length")
		return vr, length, err
	}
	length, err := c.Uint16("element length")
	return vr, uint32(length), err
}

func (p *parser) implicitVR(tag types.Tag) types.VR {
	if tag.IsPrivateCreator() {
		return types.VRLO
	}
	if p.opts.Dictionary != nil {
		return p.opts.Dictionary.VR(tag)
	}
	if tag.IsGroupLength() {
		return types.VRUL
	}
	return types.VRUN
}

// skipSequence consumes items up to and including the sequence delimiter.
// Encapsulated pixel data uses the same item structure.
func (p *parser) skipSequence(c *binary.Cursor, explicit bool, depth int) error {
	if depth > maxNesting {
		return p.corruptedAt(c.Offset(), "sequences nested too deeply")
	}

	for {
		start := c.Offset()
		tag, err := readTag(c)
		if err != nil {
			return p.corrupted(c, err)
		}
		length, err := c.Uint32("item length")
		if err != nil {
			return p.corrupted(c, err)
		}

		switch tag {
		case types.TagSequenceDelimitation:
			return nil
		case types.TagItem:
			if length == types.UndefinedLength {
				if err := p.skipItem(c, explicit, depth); err != nil {
					return err
				}
				continue
			}
			if int64(length) > c.Remaining() {
				return p.corruptedAt(start, fmt.Sprintf("item length %d exceeds remaining %d bytes", length, c.Remaining()))
			}
			c.Skip(int64(length))
		default:
			return p.corruptedAt(start, fmt.Sprintf("unexpected %s inside sequence", tag))
		}
	}
}

// skipItem consumes the elements of an undefined-length item up to and
// including the item delimiter.
func (p *parser) skipItem(c *binary.Cursor, explicit bool, depth int) error {
	for {
		tag, err := readTag(c)
		if err != nil {
			return p.corrupted(c, err)
		}
		if tag == types.TagItemDelimitation {
			if _, err := c.Uint32("item delimiter length"); err != nil {
				return p.corrupted(c, err)
			}
			return nil
		}

		vr, length, err := p.readHeader(c, tag, explicit)
		if err != nil {
			return p.corrupted(c, err)
		}
		if length == types.UndefinedLength {
			if err := p.skipSequence(c, explicit && vr != types.VRUN, depth+1); err != nil {
				return err
			}
			continue
		}
		if int64(length) > c.Remaining() {
			return p.corruptedAt(c.Offset(), fmt.Sprintf("value length %d of nested %s exceeds remaining %d bytes", length, tag, c.Remaining()))
		}
		c.Skip(int64(length))
	}
}

func (p *parser) corrupted(c *binary.Cursor, err error) error {
	var ce *types.CorruptedFileError
	if errors.As(err, &ce) {
		return err
	}
	return &types.CorruptedFileError{
		Path:   p.ds.Path,
		Offset: c.Offset(),
		Reason: err.Error(),
	}
}

func (p *parser) corruptedAt(off int64, reason string) error {
	return &types.CorruptedFileError{Path: p.ds.Path, Offset: off, Reason: reason}
}

func readTag(c *binary.Cursor) (types.Tag, error) {
	group, err := c.Uint16("element group")
	if err != nil {
		return types.Tag{}, err
	}
	element, err := c.Uint16("element number")
	if err != nil {
		return types.Tag{}, err
	}
	return types.NewTag(group, element), nil
}

// inflate decompresses everything after the file meta group.
func inflate(sr *binary.SafeReader, off int64) ([]byte, error) {
	fr := flate.NewReader(io.NewSectionReader(readerAt{sr}, off, sr.Size()-off))
	defer fr.Close()
	return io.ReadAll(fr)
}

// readerAt adapts SafeReader back to io.ReaderAt for stdlib consumers.
type readerAt struct {
	sr *binary.SafeReader
}

func (r readerAt) ReadAt(b []byte, off int64) (int, error) {
	if off >= r.sr.Size() {
		return 0, io.EOF
	}
	n := len(b)
	if rem := r.sr.Size() - off; int64(n) > rem {
		n = int(rem)
	}
	if err := r.sr.ReadAt(b[:n], off, "deflated dataset"); err != nil {
		return 0, err
	}
	if n < len(b) {
		return n, io.EOF
	}
	return n, nil
}
