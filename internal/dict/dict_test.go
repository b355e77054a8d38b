package dict

import (
	"testing"

	"github.com/simonhull/dcmcsv/internal/types"
)

func TestStandard_ByName(t *testing.T) {
	tests := []struct {
		name string
		want types.Tag
	}{
		{"PatientName", types.NewTag(0x0010, 0x0010)},
		{"PatientID", types.NewTag(0x0010, 0x0020)},
		{"SOPInstanceUID", types.NewTag(0x0008, 0x0018)},
		{"PixelData", types.TagPixelData},
		{"TransferSyntaxUID", types.TagTransferSyntaxUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Standard().ByName(tt.name)
			if !ok {
				t.Fatalf("ByName(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("ByName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestStandard_ByNameCaseSensitive(t *testing.T) {
	if _, ok := Standard().ByName("patientname"); ok {
		t.Error("keyword lookup must be case-sensitive")
	}
}

func TestStandard_AliasRoundTrip(t *testing.T) {
	d := Standard()
	for _, e := range standardEntries {
		tag, ok := d.ByName(e.Alias)
		if !ok {
			t.Errorf("ByName(%q) not found", e.Alias)
			continue
		}
		got, ok := d.ByTag(tag)
		if !ok || got.Alias != e.Alias {
			t.Errorf("ByTag(ByName(%q)) = %q, want %q", e.Alias, got.Alias, e.Alias)
		}
	}
}

func TestStandard_Unique(t *testing.T) {
	if Standard().Len() != len(standardEntries) {
		t.Errorf("Len() = %d, want %d (duplicate tags in table)", Standard().Len(), len(standardEntries))
	}
}

func TestTable_VR(t *testing.T) {
	d := Standard()
	if vr := d.VR(types.NewTag(0x0010, 0x0010)); vr != types.VRPN {
		t.Errorf("VR(PatientName) = %s, want PN", vr)
	}
	if vr := d.VR(types.NewTag(0x0009, 0x0000)); vr != types.VRUL {
		t.Errorf("VR(group length) = %s, want UL", vr)
	}
	if vr := d.VR(types.NewTag(0x0009, 0x1001)); vr != types.VRUN {
		t.Errorf("VR(private) = %s, want UN", vr)
	}
}

func TestNew_Custom(t *testing.T) {
	custom := New([]Entry{{Tag: types.NewTag(0x0009, 0x1001), VR: types.VRLO, Alias: "VendorNote"}})

	tag, ok := custom.ByName("VendorNote")
	if !ok || tag != types.NewTag(0x0009, 0x1001) {
		t.Errorf("ByName(VendorNote) = %v, %v", tag, ok)
	}
	if _, ok := custom.ByName("PatientName"); ok {
		t.Error("custom table should not contain standard entries")
	}
}
