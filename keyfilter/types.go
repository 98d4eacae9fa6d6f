package keyfilter

import "errors"

const (
	// HeaderBytes is the fixed header size.
	HeaderBytes = 32

	Magic   = "CKF1"
	Version uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0

	headerVersionOff   = 4
	headerBitOrderOff  = 5
	headerKOff         = 6
	headerMBitsOff     = 8
	headerNInsertedOff = 16
)

var (
	ErrBadRegionSize  = errors.New("keyfilter: region buffer too small")
	ErrNotInitialized = errors.New("keyfilter: header not initialized")

	ErrBadMagic    = errors.New("keyfilter: header magic invalid")
	ErrBadVersion  = errors.New("keyfilter: header version invalid")
	ErrBadBitOrder = errors.New("keyfilter: header bitOrder unsupported")
	ErrBadK        = errors.New("keyfilter: header k invalid")
	ErrBadMBits    = errors.New("keyfilter: header mBits invalid")

	ErrMBitsOverflow = errors.New("keyfilter: mBits overflows supported range")
)

type Header struct {
	BitOrder uint8
	K        uint8
	MBits    uint32
	// NInserted counts Insert calls since the last reset.
	NInserted uint64
}
