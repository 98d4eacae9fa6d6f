package keyfilter

import "bytes"

var zeroMagic = []byte{0, 0, 0, 0}

// DecodeHeader decodes the header at the start of region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeader(region []byte) (h Header, ok bool, err error) {
	if len(region) < HeaderBytes {
		return Header{}, false, ErrBadRegionSize
	}
	if bytes.Equal(region[0:4], zeroMagic) {
		return Header{}, false, nil
	}
	if string(region[0:4]) != Magic {
		return Header{}, false, ErrBadMagic
	}
	if region[headerVersionOff] != Version {
		return Header{}, false, ErrBadVersion
	}

	h.BitOrder = region[headerBitOrderOff]
	h.K = region[headerKOff]
	h.MBits = readU32LE(region[headerMBitsOff : headerMBitsOff+4])
	h.NInserted = readU64LE(region[headerNInsertedOff : headerNInsertedOff+8])

	if err := checkHeader(h); err != nil {
		return Header{}, false, err
	}
	return h, true, nil
}

// EncodeHeader writes h to the start of region.
func EncodeHeader(region []byte, h Header) error {
	if len(region) < HeaderBytes {
		return ErrBadRegionSize
	}
	if err := checkHeader(h); err != nil {
		return err
	}

	clear(region[:HeaderBytes])
	copy(region[0:4], Magic)
	region[headerVersionOff] = Version
	region[headerBitOrderOff] = h.BitOrder
	region[headerKOff] = h.K
	writeU32LE(region[headerMBitsOff:headerMBitsOff+4], h.MBits)
	writeU64LE(region[headerNInsertedOff:headerNInsertedOff+8], h.NInserted)
	return nil
}

func checkHeader(h Header) error {
	if h.BitOrder != BitOrderLSB0 {
		return ErrBadBitOrder
	}
	if h.K == 0 {
		return ErrBadK
	}
	if h.MBits == 0 {
		return ErrBadMBits
	}
	return nil
}
