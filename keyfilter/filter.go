package keyfilter

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/forestrie/go-changelog/keycmp"
)

// Filter is a view of a key filter in a caller owned region.
type Filter struct {
	region []byte
	bitset []byte
	mBits  uint64
	k      uint8
}

// Init writes an empty filter sized for keyCount keys at bitsPerKey into
// region and returns a view over it.
//
// The caller must allocate region with at least RegionBytesFor(keyCount,
// bitsPerKey) bytes.
func Init(region []byte, keyCount uint64, bitsPerKey uint64, k uint8) (*Filter, error) {
	if k == 0 {
		return nil, ErrBadK
	}
	mBits, err := MBits(keyCount, bitsPerKey)
	if err != nil {
		return nil, err
	}
	need := RegionBytes(mBits)
	if uint64(len(region)) < need {
		return nil, fmt.Errorf("%w: want=%d, got=%d", ErrBadRegionSize, need, len(region))
	}

	clear(region[:need])
	err = EncodeHeader(region, Header{BitOrder: BitOrderLSB0, K: k, MBits: mBits})
	if err != nil {
		return nil, err
	}
	return newFilter(region, mBits, k), nil
}

// Open returns a view over a region prepared by Init. The region is not
// modified.
func Open(region []byte) (*Filter, error) {
	h, ok, err := DecodeHeader(region)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotInitialized
	}
	need := RegionBytes(h.MBits)
	if uint64(len(region)) < need {
		return nil, fmt.Errorf("%w: want=%d, got=%d", ErrBadRegionSize, need, len(region))
	}
	return newFilter(region, h.MBits, h.K), nil
}

func newFilter(region []byte, mBits uint32, k uint8) *Filter {
	end := RegionBytes(mBits)
	return &Filter{
		region: region,
		bitset: region[HeaderBytes:end:end],
		mBits:  uint64(mBits),
		k:      k,
	}
}

// Insert adds key to the filter.
func (f *Filter) Insert(key *keycmp.Key) {
	h1, h2 := hashPair(key)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		f.bitset[j>>3] |= 1 << (j & 7)
	}
	counter := f.region[headerNInsertedOff : headerNInsertedOff+8]
	writeU64LE(counter, readU64LE(counter)+1)
}

// MaybeContains returns false if key is definitely not in the filter.
func (f *Filter) MaybeContains(key *keycmp.Key) bool {
	h1, h2 := hashPair(key)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		if f.bitset[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}

// Reset clears every bit and the insert counter. The sizing is unchanged.
func (f *Filter) Reset() {
	clear(f.bitset)
	writeU64LE(f.region[headerNInsertedOff:headerNInsertedOff+8], 0)
}

// Inserted returns the number of Insert calls since the last reset.
func (f *Filter) Inserted() uint64 {
	return readU64LE(f.region[headerNInsertedOff : headerNInsertedOff+8])
}

// MBits returns the bitset width.
func (f *Filter) MBits() uint64 { return f.mBits }

// K returns the number of bits set per key.
func (f *Filter) K() uint8 { return f.k }

// Bytes returns the backing region.
func (f *Filter) Bytes() []byte { return f.region }

func hashPair(key *keycmp.Key) (h1 uint64, h2 uint64) {
	sum := xxhash.Sum64(key[:])
	return sum & 0xFFFFFFFF, (sum >> 32) | 1
}
