package charset

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		input   []byte
		want    string
		wantErr bool
	}{
		{"empty is default", "", []byte("Doe^John"), "Doe^John", false},
		{"ascii", "ISO_IR 6", []byte("Doe^John"), "Doe^John", false},
		{"latin1", "ISO_IR 100", []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}, "Müller", false},
		{"latin1 padded", "ISO_IR 100 ", []byte{0xC9, 'm', 'i', 'l', 'e'}, "Émile", false},
		{"utf8", "ISO_IR 192", []byte("Ωmega"), "Ωmega", false},
		{"cyrillic", "ISO_IR 144", []byte{0xBB, 0xEE, 0xDA, 0xE1, 0xE2, 0xD5, 0xE0}, "Люкстер", false},
		{"unknown term", "ISO_IR 999", []byte("x"), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			got, err := d.Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookup_CodeExtensions(t *testing.T) {
	d, err := Lookup([]string{"", "ISO 2022 IR 87"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "ISO 2022 IR 87" {
		t.Errorf("Name() = %q, want ISO 2022 IR 87", d.Name())
	}

	d, err = Lookup([]string{"ISO 2022 IR 6", "ISO 2022 IR 100"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "ISO 2022 IR 6" {
		t.Errorf("Name() = %q, single-byte extensions should not replace the first term", d.Name())
	}
	got, err := d.Decode([]byte("Doe^John"))
	if err != nil || got != "Doe^John" {
		t.Errorf("Decode() = (%q, %v), want ASCII passed through", got, err)
	}
}

func TestDefault_Name(t *testing.T) {
	var zero Decoder
	if zero.Name() != "ISO_IR 6" {
		t.Errorf("zero Decoder Name() = %q, want ISO_IR 6", zero.Name())
	}
}

func TestStripISO2022(t *testing.T) {
	in := []byte{'A', 0x1B, '$', ')', 'C', 0xB1, 0xE8}
	got := stripISO2022(in)
	want := []byte{'A', 0xB1, 0xE8}
	if string(got) != string(want) {
		t.Errorf("stripISO2022() = % x, want % x", got, want)
	}
}
