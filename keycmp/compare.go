package keycmp

import "encoding/binary"

var (
	// Bytes is the canonical comparator.
	Bytes Comparator = ComparatorFunc(EqualBytes)

	// Words compares 64-bit words, exiting on the first difference.
	Words Comparator = ComparatorFunc(EqualWords)

	// XORFold compares every word without branching on the data.
	XORFold Comparator = ComparatorFunc(EqualXORFold)
)

// EqualBytes reports whether a and b hold the same bytes.
func EqualBytes(a, b *Key) bool {
	return *a == *b
}

// EqualWords compares a and b as four little-endian uint64 words.
func EqualWords(a, b *Key) bool {
	for i := 0; i < keyWords; i++ {
		off := i * 8
		if readU64LE(a[off:off+8]) != readU64LE(b[off:off+8]) {
			return false
		}
	}
	return true
}

// EqualXORFold folds the XOR of every word pair into a single accumulator and
// tests it once.
func EqualXORFold(a, b *Key) bool {
	var diff uint64
	for i := 0; i < keyWords; i++ {
		off := i * 8
		diff |= readU64LE(a[off:off+8]) ^ readU64LE(b[off:off+8])
	}
	return diff == 0
}

type identity struct {
	next Comparator
}

// Identity returns a comparator that reports true without reading either key
// when a and b are the same pointer, and defers to next otherwise.
// A nil next defers to Bytes.
func Identity(next Comparator) Comparator {
	if next == nil {
		next = Bytes
	}
	return identity{next: next}
}

func (c identity) Equal(a, b *Key) bool {
	if a == b {
		return true
	}
	return c.next.Equal(a, b)
}

func readU64LE(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
