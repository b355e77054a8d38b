package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/dcmcsv/internal/binary"
	"github.com/simonhull/dcmcsv/internal/charset"
)

// Element is one decoded data element of a dataset.
//
// Value holds the raw value bytes for textual and numeric VRs, and for short
// UN values. Sequences and other bulk binary values (pixel data, overlays)
// are recorded by Offset and Length only; their Value is nil.
type Element struct {
	Tag     Tag
	VR      VR
	Value   []byte
	Offset  int64  // offset of the first value byte
	Length  uint32 // declared value length, UndefinedLength for delimited values
	Order   binary.Endianness
	Charset charset.Decoder
}

// Loaded reports whether the value bytes were read.
func (e *Element) Loaded() bool {
	return e.Value != nil
}

// Text renders the value as a display string.
//
// Multiple values are joined with a backslash, as they are stored. Returns
// ErrNotText for sequences and bulk binary data.
func (e *Element) Text() (string, error) {
	switch {
	case e.VR == VRSQ:
		return "", fmt.Errorf("%s: sequence: %w", e.Tag, ErrNotText)
	case e.VR == VRUN && e.Value != nil:
		return e.unknownValue()
	case e.VR.IsBulk() || e.Value == nil && e.Length > 0:
		return "", fmt.Errorf("%s: %s value: %w", e.Tag, e.VR, ErrNotText)
	case e.VR.IsString():
		return e.stringValue()
	}

	switch e.VR {
	case VRUS:
		return joinNumbers(e, 2, func(b []byte) string {
			return strconv.FormatUint(uint64(binary.Decode[uint16](b, e.Order)), 10)
		})
	case VRSS:
		return joinNumbers(e, 2, func(b []byte) string {
			return strconv.FormatInt(int64(int16(binary.Decode[uint16](b, e.Order))), 10)
		})
	case VRUL:
		return joinNumbers(e, 4, func(b []byte) string {
			return strconv.FormatUint(uint64(binary.Decode[uint32](b, e.Order)), 10)
		})
	case VRSL:
		return joinNumbers(e, 4, func(b []byte) string {
			return strconv.FormatInt(int64(int32(binary.Decode[uint32](b, e.Order))), 10)
		})
	case VRUV:
		return joinNumbers(e, 8, func(b []byte) string {
			return strconv.FormatUint(binary.Decode[uint64](b, e.Order), 10)
		})
	case VRSV:
		return joinNumbers(e, 8, func(b []byte) string {
			return strconv.FormatInt(int64(binary.Decode[uint64](b, e.Order)), 10)
		})
	case VRFL:
		return joinNumbers(e, 4, func(b []byte) string {
			f := math.Float32frombits(binary.Decode[uint32](b, e.Order))
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		})
	case VRFD:
		return joinNumbers(e, 8, func(b []byte) string {
			f := math.Float64frombits(binary.Decode[uint64](b, e.Order))
			return strconv.FormatFloat(f, 'g', -1, 64)
		})
	case VRAT:
		return joinNumbers(e, 4, func(b []byte) string {
			return Tag{
				Group:   binary.Decode[uint16](b, e.Order),
				Element: binary.Decode[uint16](b[2:], e.Order),
			}.String()
		})
	}

	return "", fmt.Errorf("%s: unknown VR %q: %w", e.Tag, e.VR, ErrNotText)
}

func (e *Element) stringValue() (string, error) {
	var s string
	if e.VR.UsesCharset() {
		decoded, err := e.Charset.Decode(e.Value)
		if err != nil {
			return "", fmt.Errorf("%s: %w", e.Tag, err)
		}
		s = decoded
	} else {
		s = string(e.Value)
	}

	s = strings.TrimRight(s, " \x00")
	if !e.VR.IsText() {
		s = strings.TrimLeft(s, " ")
	}
	return s, nil
}

// unknownValue renders a UN value when it is plain printable ASCII, which
// covers most private text attributes read without a dictionary entry.
func (e *Element) unknownValue() (string, error) {
	s := strings.TrimRight(string(e.Value), " \x00")
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c > 0x7E {
			return "", fmt.Errorf("%s: UN value is not text: %w", e.Tag, ErrNotText)
		}
	}
	return strings.TrimLeft(s, " "), nil
}

func joinNumbers(e *Element, width int, format func([]byte) string) (string, error) {
	if len(e.Value)%width != 0 {
		return "", fmt.Errorf("%s: %s value length %d is not a multiple of %d: %w",
			e.Tag, e.VR, len(e.Value), width, ErrNotText)
	}
	parts := make([]string, 0, len(e.Value)/width)
	for i := 0; i < len(e.Value); i += width {
		parts = append(parts, format(e.Value[i:i+width]))
	}
	return strings.Join(parts, `\`), nil
}
