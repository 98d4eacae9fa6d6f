package keyfilter

// MBits returns bitsPerKey * keyCount as a header mBits value.
func MBits(keyCount uint64, bitsPerKey uint64) (uint32, error) {
	if keyCount == 0 || bitsPerKey == 0 {
		return 0, ErrBadMBits
	}
	limit := uint64(^uint32(0))
	if bitsPerKey > limit || keyCount > limit/bitsPerKey {
		return 0, ErrMBitsOverflow
	}
	return uint32(bitsPerKey * keyCount), nil
}

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint32) uint64 {
	return (uint64(mBits) + 7) / 8
}

// RegionBytes returns the region length for a filter of mBits:
//
//	HeaderBytes + ceil(mBits/8)
func RegionBytes(mBits uint32) uint64 {
	return HeaderBytes + BitsetBytes(mBits)
}

// RegionBytesFor is RegionBytes(MBits(keyCount, bitsPerKey)).
func RegionBytesFor(keyCount uint64, bitsPerKey uint64) (uint64, error) {
	mBits, err := MBits(keyCount, bitsPerKey)
	if err != nil {
		return 0, err
	}
	return RegionBytes(mBits), nil
}
