package parsing

import (
	"testing"

	"github.com/simonhull/dcmcsv/internal/types"
)

func TestParseNumericTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Tag
		ok    bool
	}{
		// Accepted forms
		{"plain", "00100010", types.NewTag(0x0010, 0x0010), true},
		{"comma", "0010,0010", types.NewTag(0x0010, 0x0010), true},
		{"parenthesized", "(0010,0010)", types.NewTag(0x0010, 0x0010), true},
		{"lower case hex", "7fe00010", types.NewTag(0x7FE0, 0x0010), true},
		{"mixed case hex", "(7Fe0,001a)", types.NewTag(0x7FE0, 0x001A), true},
		{"max values", "FFFF,FFFF", types.NewTag(0xFFFF, 0xFFFF), true},

		// Rejected forms
		{"empty", "", types.Tag{}, false},
		{"keyword", "PatientName", types.Tag{}, false},
		{"short", "0010001", types.Tag{}, false},
		{"long", "001000100", types.Tag{}, false},
		{"short half", "010,0010", types.Tag{}, false},
		{"non hex", "0010,00G0", types.Tag{}, false},
		{"unbalanced paren", "(0010,0010", types.Tag{}, false},
		{"space after comma", "0010, 0010", types.Tag{}, false},
		{"hex prefix", "0x00100010", types.Tag{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumericTag(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseNumericTag(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseNumericTag(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumericTag_FormsAgree(t *testing.T) {
	for _, tag := range []types.Tag{
		types.NewTag(0x0008, 0x0060),
		types.NewTag(0x0010, 0x0020),
		types.NewTag(0x7FE0, 0x0010),
		types.NewTag(0x0029, 0x1010),
	} {
		plain := tag.String()[1:5] + tag.String()[6:10]
		comma := tag.String()[1:10]
		paren := tag.String()

		for _, form := range []string{plain, comma, paren} {
			got, ok := ParseNumericTag(form)
			if !ok || got != tag {
				t.Errorf("ParseNumericTag(%q) = %s, %v; want %s", form, got, ok, tag)
			}
		}
	}
}
