// Package charset maps DICOM Specific Character Set (0008,0005) defined terms
// to text decoders.
package charset

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Decoder converts raw element bytes in a given character repertoire to UTF-8.
//
// The zero value is the default repertoire (ISO_IR 6), which passes bytes
// through unchanged.
type Decoder struct {
	enc  encoding.Encoding
	name string

	// stripEscapes drops ISO 2022 designation sequences before decoding, for
	// repertoires where x/text only provides the non-escaped encoding.
	stripEscapes bool
}

// Default is the DICOM default character repertoire.
var Default = Decoder{name: "ISO_IR 6"}

// Name returns the defined term this decoder was built from.
func (d Decoder) Name() string {
	if d.name == "" {
		return Default.name
	}
	return d.name
}

// Decode converts b to a UTF-8 string.
func (d Decoder) Decode(b []byte) (string, error) {
	if d.enc == nil {
		return string(b), nil
	}
	if d.stripEscapes {
		b = stripISO2022(b)
	}
	out, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", d.Name(), err)
	}
	return string(out), nil
}

var terms = map[string]Decoder{
	"":                Default,
	"ISO_IR 6":        Default,
	"ISO 2022 IR 6":   {name: "ISO 2022 IR 6"},
	"ISO_IR 192":      {enc: unicode.UTF8, name: "ISO_IR 192"},
	"ISO_IR 100":      {enc: charmap.ISO8859_1, name: "ISO_IR 100"},
	"ISO 2022 IR 100": {enc: charmap.ISO8859_1, name: "ISO 2022 IR 100"},
	"ISO_IR 101":      {enc: charmap.ISO8859_2, name: "ISO_IR 101"},
	"ISO 2022 IR 101": {enc: charmap.ISO8859_2, name: "ISO 2022 IR 101"},
	"ISO_IR 109":      {enc: charmap.ISO8859_3, name: "ISO_IR 109"},
	"ISO 2022 IR 109": {enc: charmap.ISO8859_3, name: "ISO 2022 IR 109"},
	"ISO_IR 110":      {enc: charmap.ISO8859_4, name: "ISO_IR 110"},
	"ISO 2022 IR 110": {enc: charmap.ISO8859_4, name: "ISO 2022 IR 110"},
	"ISO_IR 144":      {enc: charmap.ISO8859_5, name: "ISO_IR 144"},
	"ISO 2022 IR 144": {enc: charmap.ISO8859_5, name: "ISO 2022 IR 144"},
	"ISO_IR 127":      {enc: charmap.ISO8859_6, name: "ISO_IR 127"},
	"ISO 2022 IR 127": {enc: charmap.ISO8859_6, name: "ISO 2022 IR 127"},
	"ISO_IR 126":      {enc: charmap.ISO8859_7, name: "ISO_IR 126"},
	"ISO 2022 IR 126": {enc: charmap.ISO8859_7, name: "ISO 2022 IR 126"},
	"ISO_IR 138":      {enc: charmap.ISO8859_8, name: "ISO_IR 138"},
	"ISO 2022 IR 138": {enc: charmap.ISO8859_8, name: "ISO 2022 IR 138"},
	"ISO_IR 148":      {enc: charmap.ISO8859_9, name: "ISO_IR 148"},
	"ISO 2022 IR 148": {enc: charmap.ISO8859_9, name: "ISO 2022 IR 148"},
	"ISO_IR 203":      {enc: charmap.ISO8859_15, name: "ISO_IR 203"},
	"ISO 2022 IR 203": {enc: charmap.ISO8859_15, name: "ISO 2022 IR 203"},
	"ISO_IR 166":      {enc: charmap.Windows874, name: "ISO_IR 166"},
	"ISO 2022 IR 166": {enc: charmap.Windows874, name: "ISO 2022 IR 166"},
	"ISO_IR 13":       {enc: japanese.ShiftJIS, name: "ISO_IR 13"},
	"ISO 2022 IR 13":  {enc: japanese.ShiftJIS, name: "ISO 2022 IR 13"},
	"ISO 2022 IR 87":  {enc: japanese.ISO2022JP, name: "ISO 2022 IR 87"},
	"ISO 2022 IR 159": {enc: japanese.ISO2022JP, name: "ISO 2022 IR 159"},
	"ISO 2022 IR 149": {enc: korean.EUCKR, name: "ISO 2022 IR 149", stripEscapes: true},
	"ISO 2022 IR 58":  {enc: simplifiedchinese.GBK, name: "ISO 2022 IR 58", stripEscapes: true},
	"GB18030":         {enc: simplifiedchinese.GB18030, name: "GB18030"},
	"GBK":             {enc: simplifiedchinese.GBK, name: "GBK"},
}

// Lookup selects a decoder for the values of a Specific Character Set element.
//
// A multi-valued attribute ("\ISO 2022 IR 87") describes code extensions; the
// first multi-byte repertoire wins, otherwise the first value. Unknown terms
// return Default and an error naming the term.
func Lookup(values []string) (Decoder, error) {
	if len(values) == 0 {
		return Default, nil
	}

	chosen := strings.TrimSpace(values[0])
	for _, v := range values[1:] {
		v = strings.TrimSpace(v)
		if d, ok := terms[v]; ok && d.enc != nil && isMultiByte(v) {
			chosen = v
			break
		}
	}

	d, ok := terms[chosen]
	if !ok {
		return Default, fmt.Errorf("unsupported specific character set %q", chosen)
	}
	return d, nil
}

// Parse splits a raw Specific Character Set value on backslashes and looks it up.
func Parse(raw string) (Decoder, error) {
	raw = strings.TrimRight(raw, " \x00")
	if raw == "" {
		return Default, nil
	}
	return Lookup(strings.Split(raw, `\`))
}

func isMultiByte(term string) bool {
	switch term {
	case "ISO 2022 IR 87", "ISO 2022 IR 159", "ISO 2022 IR 149", "ISO 2022 IR 58":
		return true
	}
	return false
}

// stripISO2022 removes ESC designation sequences (ESC $ ) C and friends).
func stripISO2022(b []byte) []byte {
	if bytes.IndexByte(b, 0x1B) < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != 0x1B {
			out = append(out, b[i])
			continue
		}
		// Intermediate bytes are 0x20-0x2F, the final byte ends the sequence.
		j := i + 1
		for j < len(b) && b[j] >= 0x20 && b[j] <= 0x2F {
			j++
		}
		i = j
	}
	return out
}
