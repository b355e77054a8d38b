package dicom

import (
	"github.com/simonhull/dcmcsv/internal/binary"
	"github.com/simonhull/dcmcsv/internal/registry"
	"github.com/simonhull/dcmcsv/internal/types"
)

func init() {
	registry.Register(types.TransferSyntax{
		UID:   types.ImplicitVRLittleEndian,
		Name:  "Implicit VR Little Endian",
		Order: binary.LittleEndian,
	})
	registry.Register(types.TransferSyntax{
		UID:      types.ExplicitVRLittleEndian,
		Name:     "Explicit VR Little Endian",
		Explicit: true,
		Order:    binary.LittleEndian,
	})
	registry.Register(types.TransferSyntax{
		UID:      types.DeflatedExplicitVRLittleEndian,
		Name:     "Deflated Explicit VR Little Endian",
		Explicit: true,
		Order:    binary.LittleEndian,
		Deflated: true,
	})
	registry.Register(types.TransferSyntax{
		UID:      types.ExplicitVRBigEndian,
		Name:     "Explicit VR Big Endian",
		Explicit: true,
		Order:    binary.BigEndian,
	})

	// Encapsulated syntaxes only change how Pixel Data is stored; the
	// dataset itself is Explicit VR Little Endian.
	for uid, name := range map[string]string{
		"1.2.840.10008.1.2.4.50":  "JPEG Baseline (Process 1)",
		"1.2.840.10008.1.2.4.51":  "JPEG Extended (Process 2 & 4)",
		"1.2.840.10008.1.2.4.57":  "JPEG Lossless, Non-Hierarchical (Process 14)",
		"1.2.840.10008.1.2.4.70":  "JPEG Lossless, First-Order Prediction",
		"1.2.840.10008.1.2.4.80":  "JPEG-LS Lossless",
		"1.2.840.10008.1.2.4.81":  "JPEG-LS Near-Lossless",
		"1.2.840.10008.1.2.4.90":  "JPEG 2000 (Lossless Only)",
		"1.2.840.10008.1.2.4.91":  "JPEG 2000",
		"1.2.840.10008.1.2.4.100": "MPEG2 Main Profile / Main Level",
		"1.2.840.10008.1.2.4.102": "MPEG-4 AVC/H.264 High Profile / Level 4.1",
		"1.2.840.10008.1.2.5":     "RLE Lossless",
	} {
		registry.Register(types.TransferSyntax{
			UID:      uid,
			Name:     name,
			Explicit: true,
			Order:    binary.LittleEndian,
		})
	}
}

// lookupTransferSyntax returns the registered syntax for uid. Unknown UIDs
// decode as Explicit VR Little Endian, which every newer syntax uses for the
// dataset.
func lookupTransferSyntax(uid string) (types.TransferSyntax, bool) {
	if ts, ok := registry.Get(uid); ok {
		return ts, true
	}
	return types.TransferSyntax{
		UID:      uid,
		Explicit: true,
		Order:    binary.LittleEndian,
	}, false
}
