package binary

import "io"

// Writer writes byte-order aware values and tracks how many bytes were written.
// It backs the synthetic DICOM builders used in tests and tools.
type Writer struct {
	w      io.Writer
	offset int64
	order  Endianness
	err    error
}

// NewWriter creates a Writer using the given byte order.
func NewWriter(w io.Writer, order Endianness) *Writer {
	return &Writer{w: w, order: order}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.offset
}

// SetOrder switches the byte order for subsequent numeric writes.
func (w *Writer) SetOrder(order Endianness) {
	w.order = order
}

// Err returns the first write error, if any. Writes after an error are no-ops.
func (w *Writer) Err() error {
	return w.err
}

// Bytes writes raw bytes.
func (w *Writer) Bytes(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(b)
	w.offset += int64(n)
	w.err = err
}

// String writes s as raw bytes.
func (w *Writer) String(s string) {
	w.Bytes([]byte(s))
}

// Uint16 writes v in the writer's byte order.
func (w *Writer) Uint16(v uint16) {
	buf := make([]byte, 2)
	w.order.ByteOrder().PutUint16(buf, v)
	w.Bytes(buf)
}

// Uint32 writes v in the writer's byte order.
func (w *Writer) Uint32(v uint32) {
	buf := make([]byte, 4)
	w.order.ByteOrder().PutUint32(buf, v)
	w.Bytes(buf)
}
