// Package binary provides bounds-checked, byte-order aware reading primitives
// for DICOM streams.
package binary

import (
	"fmt"
	"io"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
//
// Every failed read names the file, the offset and what was being read, so a
// truncated DICOM file reports "reading element length at offset 1234" instead
// of a bare io.EOF. Truncation errors wrap io.ErrUnexpectedEOF.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads len(b) bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s: %w",
			sr.path, off, sr.size, what, io.ErrUnexpectedEOF)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s: %w",
			sr.path, len(b), off, sr.size, what, io.ErrUnexpectedEOF)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d: %w",
			sr.path, what, off, n, len(b), io.ErrUnexpectedEOF)
	}

	return nil
}

// Cursor reads sequentially from a SafeReader, tracking the offset and the
// byte order of the current DICOM encoding.
//
// The byte order can change mid-stream: the file meta group is always little
// endian while the dataset that follows may be big endian.
type Cursor struct {
	*SafeReader
	offset int64
	order  Endianness
}

// NewCursor creates a Cursor starting at offset using the given byte order.
func NewCursor(sr *SafeReader, offset int64, order Endianness) *Cursor {
	return &Cursor{
		SafeReader: sr,
		offset:     offset,
		order:      order,
	}
}

// Offset returns the current offset.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Seek moves the cursor to an absolute offset.
func (c *Cursor) Seek(off int64) {
	c.offset = off
}

// Skip advances the offset by n bytes.
func (c *Cursor) Skip(n int64) {
	c.offset += n
}

// Order returns the byte order used for multi-byte reads.
func (c *Cursor) Order() Endianness {
	return c.order
}

// SetOrder switches the byte order for subsequent reads.
func (c *Cursor) SetOrder(order Endianness) {
	c.order = order
}

// Remaining reports how many bytes are left after the current offset.
func (c *Cursor) Remaining() int64 {
	return c.size - c.offset
}

// Uint16 reads a 16-bit value and advances the offset.
func (c *Cursor) Uint16(what string) (uint16, error) {
	v, err := ReadEndian[uint16](c.SafeReader, c.offset, what, c.order)
	if err != nil {
		return 0, err
	}
	c.offset += 2
	return v, nil
}

// Uint32 reads a 32-bit value and advances the offset.
func (c *Cursor) Uint32(what string) (uint32, error) {
	v, err := ReadEndian[uint32](c.SafeReader, c.offset, what, c.order)
	if err != nil {
		return 0, err
	}
	c.offset += 4
	return v, nil
}

// Bytes reads n raw bytes and advances the offset.
func (c *Cursor) Bytes(n int64, what string) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("%s: %s of %d bytes at offset %d exceeds file size %d: %w",
			c.path, what, n, c.offset, c.size, io.ErrUnexpectedEOF)
	}
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := c.ReadAt(buf, c.offset, what); err != nil {
		return nil, err
	}
	c.offset += n
	return buf, nil
}

// String reads n bytes as a string and advances the offset.
func (c *Cursor) String(n int64, what string) (string, error) {
	b, err := c.Bytes(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
