package changelog

import (
	"math"

	"github.com/forestrie/go-changelog/cyclic"
	"github.com/forestrie/go-changelog/keycmp"
)

const (
	// ValueBytes is the width of the encoded value.
	ValueBytes = 8

	// EntryBytes is the fixed width of an encoded entry.
	EntryBytes = ValueBytes + keycmp.KeyBytes

	entryValueOff = 0
	entryKeyOff   = ValueBytes

	// Unbounded is the budget that visits every live entry.
	Unbounded uint64 = math.MaxUint64
)

var (
	ErrSizeMismatch = cyclic.ErrSizeMismatch
	ErrLayout       = cyclic.ErrLayout
)

// Key is the fixed-width entry key.
type Key = keycmp.Key
