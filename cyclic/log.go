package cyclic

import "fmt"

// Log is a view of a cyclic record log laid out in a caller owned buffer.
//
// Length and nextIndex live only in the buffer header. Every accessor reads
// them from there, so any two views over the same bytes agree.
type Log struct {
	buf         []byte
	records     []byte
	capacity    uint64
	recordBytes uint64
}

// Init writes an empty log header into buf and returns a view over it.
//
// buf must be exactly RequiredSize(capacity, recordBytes) bytes. All record
// slots are zeroed, so a reused buffer starts clean.
func Init(buf []byte, capacity uint64, recordBytes uint64) (*Log, error) {
	if err := CheckCapacity(capacity, recordBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	}
	need := RequiredSize(capacity, recordBytes)
	if uint64(len(buf)) != need {
		return nil, fmt.Errorf("%w: want=%d, got=%d", ErrSizeMismatch, need, len(buf))
	}

	clear(buf)
	if err := EncodeHeader(buf, Header{Capacity: capacity}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	}
	return newLog(buf, capacity, recordBytes), nil
}

// FromBytes returns a view over a buffer previously prepared by Init.
//
// Nothing in buf is modified. buf may be longer than the size the header
// implies; the excess is ignored.
func FromBytes(buf []byte, recordBytes uint64) (*Log, error) {
	if recordBytes == 0 {
		return nil, fmt.Errorf("%w: %w", ErrLayout, ErrBadRecordSize)
	}
	h, err := DecodeHeader(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	if err := CheckCapacity(h.Capacity, recordBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	need := RequiredSize(h.Capacity, recordBytes)
	if uint64(len(buf)) < need {
		return nil, fmt.Errorf(
			"%w: capacity %d needs %d bytes, got=%d", ErrLayout, h.Capacity, need, len(buf))
	}
	if err := CheckHeader(h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	return newLog(buf, h.Capacity, recordBytes), nil
}

func newLog(buf []byte, capacity uint64, recordBytes uint64) *Log {
	end := RequiredSize(capacity, recordBytes)
	return &Log{
		buf:         buf,
		records:     buf[HeaderBytes:end:end],
		capacity:    capacity,
		recordBytes: recordBytes,
	}
}

// Capacity returns the fixed number of record slots.
func (l *Log) Capacity() uint64 { return l.capacity }

// RecordBytes returns the fixed record width.
func (l *Log) RecordBytes() uint64 { return l.recordBytes }

// Len returns the number of slots ever written, at most Capacity.
func (l *Log) Len() uint64 {
	return readU64LE(l.buf[headerLengthOff : headerLengthOff+8])
}

// NextIndex returns the slot the next Append writes.
func (l *Log) NextIndex() uint64 {
	return readU64LE(l.buf[headerNextIndexOff : headerNextIndexOff+8])
}

// Full reports whether the ring has been filled at least once.
func (l *Log) Full() bool { return l.Len() == l.capacity }

// Header returns the current header values.
func (l *Log) Header() Header {
	return Header{Capacity: l.capacity, Length: l.Len(), NextIndex: l.NextIndex()}
}

// Bytes returns the backing buffer, exactly as supplied by the caller.
func (l *Log) Bytes() []byte { return l.buf }

// LastIndex returns the slot of the most recently appended record.
// Only meaningful when Len() > 0.
func (l *Log) LastIndex() uint64 {
	return (l.NextIndex() + l.capacity - 1) % l.capacity
}

// OldestIndex returns the slot of the oldest live record.
// Only meaningful when Len() > 0.
func (l *Log) OldestIndex() uint64 {
	if l.Full() {
		return l.NextIndex()
	}
	return 0
}

// Prev returns the slot before i in append order.
//
// ok is false when i is slot 0 and the ring has never been filled: slot 0 then
// holds the oldest record ever written and there is nothing before it.
func (l *Log) Prev(i uint64) (prev uint64, ok bool) {
	if i > 0 {
		return i - 1, true
	}
	if l.Full() {
		return l.capacity - 1, true
	}
	return 0, false
}

// Record returns the bytes of slot i if it has been written. The returned
// slice aliases the buffer.
func (l *Log) Record(i uint64) ([]byte, bool) {
	if i >= l.Len() {
		return nil, false
	}
	return l.slot(i), true
}

// Append writes rec into the slot at NextIndex, overwriting whatever that slot
// held, and advances the counters.
//
// rec must be exactly RecordBytes long.
func (l *Log) Append(rec []byte) {
	if uint64(len(rec)) != l.recordBytes {
		panic("cyclic: bad record length")
	}

	next := l.NextIndex()
	copy(l.slot(next), rec)

	next++
	if next == l.capacity {
		next = 0
	}
	length := l.Len()
	if length < l.capacity {
		length++
	}
	writeU64LE(l.buf[headerLengthOff:headerLengthOff+8], length)
	writeU64LE(l.buf[headerNextIndexOff:headerNextIndexOff+8], next)
}

// Slot returns the bytes of slot i without checking it has been written.
// Caller must ensure i < Len(), out of range slots panic.
func (l *Log) Slot(i uint64) []byte {
	return l.slot(i)
}

func (l *Log) slot(i uint64) []byte {
	off := i * l.recordBytes
	end := off + l.recordBytes
	return l.records[off:end:end]
}
