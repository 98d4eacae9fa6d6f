package cyclic

import "errors"

const (
	// HeaderBytes is the fixed header size: capacity, length and nextIndex as
	// little-endian uint64 values.
	HeaderBytes = 24

	headerCapacityOff  = 0
	headerLengthOff    = 8
	headerNextIndexOff = 16
)

var (
	// ErrSizeMismatch is returned by Init when the buffer is not exactly the
	// size required for the requested capacity.
	ErrSizeMismatch = errors.New("cyclic: buffer size does not match the required size")

	// ErrLayout is returned by FromBytes when the buffer does not hold a valid
	// log.
	ErrLayout = errors.New("cyclic: buffer does not hold a valid log layout")

	ErrHeaderBytes        = errors.New("cyclic: buffer too small for header")
	ErrZeroCapacity       = errors.New("cyclic: capacity must be > 0")
	ErrBadRecordSize      = errors.New("cyclic: record size must be > 0")
	ErrSizeOverflow       = errors.New("cyclic: size computation overflow")
	ErrInconsistentHeader = errors.New("cyclic: header counters are inconsistent")
)

// Header is the decoded log header.
type Header struct {
	Capacity  uint64
	Length    uint64
	NextIndex uint64
}
