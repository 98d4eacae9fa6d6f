package cyclic

import "fmt"

// DecodeHeader decodes the header at the start of buf. No consistency checks
// are made, see CheckHeader.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderBytes {
		return Header{}, fmt.Errorf("%w: want>=%d, got=%d", ErrHeaderBytes, HeaderBytes, len(buf))
	}
	return Header{
		Capacity:  readU64LE(buf[headerCapacityOff : headerCapacityOff+8]),
		Length:    readU64LE(buf[headerLengthOff : headerLengthOff+8]),
		NextIndex: readU64LE(buf[headerNextIndexOff : headerNextIndexOff+8]),
	}, nil
}

// EncodeHeader writes h to the start of buf.
func EncodeHeader(buf []byte, h Header) error {
	if len(buf) < HeaderBytes {
		return fmt.Errorf("%w: want>=%d, got=%d", ErrHeaderBytes, HeaderBytes, len(buf))
	}
	writeU64LE(buf[headerCapacityOff:headerCapacityOff+8], h.Capacity)
	writeU64LE(buf[headerLengthOff:headerLengthOff+8], h.Length)
	writeU64LE(buf[headerNextIndexOff:headerNextIndexOff+8], h.NextIndex)
	return nil
}

// CheckHeader checks the counters in h are ones Append could have produced.
//
// Until the ring is first filled every append lands at slot length, so
// nextIndex must equal length. After that nextIndex can be any slot.
func CheckHeader(h Header) error {
	if h.Capacity == 0 {
		return ErrZeroCapacity
	}
	if h.Length > h.Capacity || h.NextIndex >= h.Capacity {
		return fmt.Errorf(
			"%w: length=%d, nextIndex=%d, capacity=%d",
			ErrInconsistentHeader, h.Length, h.NextIndex, h.Capacity)
	}
	if h.Length < h.Capacity && h.NextIndex != h.Length {
		return fmt.Errorf(
			"%w: nextIndex=%d must equal length=%d before the first wrap",
			ErrInconsistentHeader, h.NextIndex, h.Length)
	}
	return nil
}
