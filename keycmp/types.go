package keycmp

import "errors"

const (
	// KeyBytes is the fixed key width.
	KeyBytes = 32

	// keyWords is the number of 64-bit words in a key.
	keyWords = KeyBytes / 8
)

var ErrUnknownComparator = errors.New("keycmp: unknown comparator")

// Key is a fixed-width key. It is a value type; copies never alias.
type Key [KeyBytes]byte

// Comparator tests two keys for equality.
//
// Implementations must agree with element-wise comparison for every input.
type Comparator interface {
	Equal(a, b *Key) bool
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(a, b *Key) bool

func (f ComparatorFunc) Equal(a, b *Key) bool { return f(a, b) }
