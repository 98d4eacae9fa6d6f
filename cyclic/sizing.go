package cyclic

import "math"

// RequiredSize returns the exact buffer length for a log of capacity records,
// each recordBytes wide:
//
//	HeaderBytes + capacity*recordBytes
//
// The caller is responsible for ensuring the result does not overflow,
// CheckCapacity can be used to check this.
func RequiredSize(capacity uint64, recordBytes uint64) uint64 {
	return HeaderBytes + capacity*recordBytes
}

// CheckCapacity validates capacity and recordBytes for safe sizing
// computations.
func CheckCapacity(capacity uint64, recordBytes uint64) error {
	if capacity == 0 {
		return ErrZeroCapacity
	}
	if recordBytes == 0 {
		return ErrBadRecordSize
	}
	// The size must be addressable as a slice length.
	if capacity > (math.MaxInt-HeaderBytes)/recordBytes {
		return ErrSizeOverflow
	}
	return nil
}
