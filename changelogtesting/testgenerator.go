package changelogtesting

import (
	"math/rand"

	"github.com/forestrie/go-changelog/changelog"
	"github.com/forestrie/go-changelog/keycmp"
)

// TestGenerator produces deterministic keys and values from a seed.
type TestGenerator struct {
	rng *rand.Rand
}

func NewTestGenerator(seed int64) *TestGenerator {
	return &TestGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Key returns a random key. Distinct calls collide with negligible
// probability.
func (g *TestGenerator) Key() keycmp.Key {
	var k keycmp.Key
	_, _ = g.rng.Read(k[:])
	return k
}

func (g *TestGenerator) Value() uint64 {
	return g.rng.Uint64()
}

// Fill appends n random entries.
func (g *TestGenerator) Fill(cl *changelog.Changelog, n uint64) {
	for i := uint64(0); i < n; i++ {
		cl.Append(g.Key(), g.Value())
	}
}

// PlaceAtDepth appends key followed by depth-1 random entries, so that a scan
// for key matches on exactly its depth'th comparison.
//
// depth must be in [1, cl.Capacity()].
func (g *TestGenerator) PlaceAtDepth(cl *changelog.Changelog, key keycmp.Key, value uint64, depth uint64) {
	if depth == 0 || depth > cl.Capacity() {
		panic("changelogtesting: depth out of range")
	}
	cl.Append(key, value)
	g.Fill(cl, depth-1)
}

// NumberedKey returns a key whose first byte is n and whose remaining bytes
// are zero.
func NumberedKey(n byte) keycmp.Key {
	var k keycmp.Key
	k[0] = n
	return k
}

// KeyDifferingAt returns a copy of base with the byte at pos incremented
// (wrapping), so that it first differs from base at exactly pos.
func KeyDifferingAt(base keycmp.Key, pos int) keycmp.Key {
	k := base
	k[pos]++
	return k
}

// FilledKey returns a key with every byte set to b.
func FilledKey(b byte) keycmp.Key {
	var k keycmp.Key
	for i := range k {
		k[i] = b
	}
	return k
}
