package types

import "github.com/simonhull/dcmcsv/internal/binary"

// TransferSyntax describes how the dataset following the file meta group is
// encoded.
type TransferSyntax struct {
	UID      string
	Name     string
	Explicit bool
	Order    binary.Endianness
	Deflated bool
}

// Well-known transfer syntax UIDs.
const (
	ImplicitVRLittleEndian         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian         = "1.2.840.10008.1.2.1"
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"
	ExplicitVRBigEndian            = "1.2.840.10008.1.2.2"
)

// String returns the transfer syntax name, or its UID when unnamed.
func (ts TransferSyntax) String() string {
	if ts.Name != "" {
		return ts.Name
	}
	return ts.UID
}
