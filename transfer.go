package dcmcsv

import (
	"github.com/simonhull/dcmcsv/internal/registry"
	"github.com/simonhull/dcmcsv/internal/types"
)

// TransferSyntax is an alias to types.TransferSyntax.
type TransferSyntax = types.TransferSyntax

// Re-export the uncompressed transfer syntax UIDs.
const (
	ImplicitVRLittleEndian         = types.ImplicitVRLittleEndian
	ExplicitVRLittleEndian         = types.ExplicitVRLittleEndian
	DeflatedExplicitVRLittleEndian = types.DeflatedExplicitVRLittleEndian
	ExplicitVRBigEndian            = types.ExplicitVRBigEndian
)

// LookupTransferSyntax returns the registered transfer syntax for uid.
func LookupTransferSyntax(uid string) (TransferSyntax, bool) {
	return registry.Get(uid)
}
