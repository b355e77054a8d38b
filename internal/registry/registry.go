// Package registry maps transfer syntax UIDs to their dataset encodings.
package registry

import (
	"strings"
	"sync"

	"github.com/simonhull/dcmcsv/internal/types"
)

var (
	mu     sync.RWMutex
	syntax = make(map[string]types.TransferSyntax)
)

// Register registers a transfer syntax under its UID.
// This is called by the decoder package during initialization (init functions).
func Register(ts types.TransferSyntax) {
	mu.Lock()
	defer mu.Unlock()
	syntax[ts.UID] = ts
}

// Get returns the transfer syntax for uid. Trailing NUL and space padding
// from the UI value is ignored.
func Get(uid string) (types.TransferSyntax, bool) {
	mu.RLock()
	defer mu.RUnlock()
	ts, ok := syntax[strings.TrimRight(uid, " \x00")]
	return ts, ok
}
