package cyclic

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecordBytes = 8

func rec(v uint64) []byte {
	b := make([]byte, testRecordBytes)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func recValue(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func newTestLog(t *testing.T, capacity uint64) *Log {
	t.Helper()
	buf := make([]byte, RequiredSize(capacity, testRecordBytes))
	l, err := Init(buf, capacity, testRecordBytes)
	require.NoError(t, err)
	return l
}

func TestInit(t *testing.T) {
	l := newTestLog(t, 5)
	assert.Equal(t, uint64(5), l.Capacity())
	assert.Equal(t, uint64(0), l.Len())
	assert.Equal(t, uint64(0), l.NextIndex())
	assert.Equal(t, uint64(testRecordBytes), l.RecordBytes())
	assert.False(t, l.Full())

	_, ok := l.Record(0)
	assert.False(t, ok)

	h, err := DecodeHeader(l.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Header{Capacity: 5}, h)
}

func TestInitSizeMismatch(t *testing.T) {
	need := RequiredSize(4, testRecordBytes)

	_, err := Init(make([]byte, need-1), 4, testRecordBytes)
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = Init(make([]byte, need+1), 4, testRecordBytes)
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = Init(make([]byte, HeaderBytes), 0, testRecordBytes)
	require.ErrorIs(t, err, ErrSizeMismatch)
	require.ErrorIs(t, err, ErrZeroCapacity)

	_, err = Init(make([]byte, HeaderBytes), 4, 0)
	require.ErrorIs(t, err, ErrSizeMismatch)
	require.ErrorIs(t, err, ErrBadRecordSize)
}

func TestInitClearsReusedBuffer(t *testing.T) {
	buf := make([]byte, RequiredSize(3, testRecordBytes))
	for i := range buf {
		buf[i] = 0xFF
	}
	l, err := Init(buf, 3, testRecordBytes)
	require.NoError(t, err)
	require.Equal(t, uint64(0), l.Len())
	for _, b := range buf[HeaderBytes:] {
		require.Equal(t, byte(0), b)
	}
}

func TestAppendAndWrap(t *testing.T) {
	const capacity = 3
	l := newTestLog(t, capacity)

	for n := uint64(1); n <= 10; n++ {
		l.Append(rec(n))

		assert.Equal(t, min(n, capacity), l.Len())
		assert.LessOrEqual(t, l.Len(), l.Capacity())
		assert.Equal(t, n%capacity, l.NextIndex())

		last, ok := l.Record(l.LastIndex())
		require.True(t, ok)
		assert.Equal(t, n, recValue(last))
	}

	// 10 appends into 3 slots: slot i holds the latest n with (n-1)%3 == i.
	want := []uint64{10, 8, 9}
	for i, w := range want {
		r, ok := l.Record(uint64(i))
		require.True(t, ok)
		assert.Equal(t, w, recValue(r))
	}
	assert.Equal(t, uint64(1), l.OldestIndex())
}

func TestAppendBadRecordLengthPanics(t *testing.T) {
	l := newTestLog(t, 2)
	require.Panics(t, func() { l.Append(make([]byte, testRecordBytes+1)) })
	require.Equal(t, uint64(0), l.Len())
}

func TestPrevStopsBeforeFirstWrap(t *testing.T) {
	l := newTestLog(t, 4)
	l.Append(rec(1))
	l.Append(rec(2))

	prev, ok := l.Prev(1)
	require.True(t, ok)
	require.Equal(t, uint64(0), prev)

	_, ok = l.Prev(0)
	require.False(t, ok)
	require.Equal(t, uint64(0), l.OldestIndex())
}

func TestPrevWrapsOnceFull(t *testing.T) {
	l := newTestLog(t, 4)
	for n := uint64(1); n <= 5; n++ {
		l.Append(rec(n))
	}
	require.True(t, l.Full())

	prev, ok := l.Prev(0)
	require.True(t, ok)
	require.Equal(t, uint64(3), prev)

	// Walk newest to oldest.
	var got []uint64
	i := l.LastIndex()
	for steps := uint64(0); steps < l.Len(); steps++ {
		r, ok := l.Record(i)
		require.True(t, ok)
		got = append(got, recValue(r))
		i, _ = l.Prev(i)
	}
	require.Equal(t, []uint64{5, 4, 3, 2}, got)
}

func TestRecordAliasesBuffer(t *testing.T) {
	l := newTestLog(t, 2)
	l.Append(rec(42))

	r, ok := l.Record(0)
	require.True(t, ok)
	require.Len(t, r, testRecordBytes)
	require.Equal(t, testRecordBytes, cap(r))
	require.Equal(t, l.Bytes()[HeaderBytes:HeaderBytes+testRecordBytes], r)
}

func TestFromBytesRoundTrip(t *testing.T) {
	l := newTestLog(t, 3)

	// Immediately after Init.
	l2, err := FromBytes(l.Bytes(), testRecordBytes)
	require.NoError(t, err)
	require.Equal(t, uint64(0), l2.Len())
	require.Equal(t, uint64(3), l2.Capacity())

	for n := uint64(1); n <= 4; n++ {
		l.Append(rec(n))
	}

	// Appends through one view are visible through another.
	require.Equal(t, l.Header(), l2.Header())

	l3, err := FromBytes(l2.Bytes(), testRecordBytes)
	require.NoError(t, err)
	require.Equal(t, l.Header(), l3.Header())
	for i := uint64(0); i < l.Len(); i++ {
		a, _ := l.Record(i)
		b, _ := l3.Record(i)
		require.Equal(t, a, b)
	}

	// Appending through the re-opened view continues the ring.
	l3.Append(rec(5))
	r, ok := l.Record(l.LastIndex())
	require.True(t, ok)
	require.Equal(t, uint64(5), recValue(r))
}

func TestFromBytesDoesNotModify(t *testing.T) {
	l := newTestLog(t, 3)
	l.Append(rec(9))
	before := append([]byte(nil), l.Bytes()...)

	_, err := FromBytes(l.Bytes(), testRecordBytes)
	require.NoError(t, err)
	require.Equal(t, before, l.Bytes())
}

func TestFromBytesLongerBuffer(t *testing.T) {
	need := RequiredSize(2, testRecordBytes)
	buf := make([]byte, need+16)
	_, err := Init(buf[:need], 2, testRecordBytes)
	require.NoError(t, err)

	l, err := FromBytes(buf, testRecordBytes)
	require.NoError(t, err)
	require.Equal(t, uint64(2), l.Capacity())
	require.Len(t, l.Bytes(), int(need+16))
}

func TestFromBytesLayoutErrors(t *testing.T) {
	header := func(h Header, size uint64) []byte {
		buf := make([]byte, size)
		require.NoError(t, EncodeHeader(buf, h))
		return buf
	}

	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{"empty buffer", nil, ErrHeaderBytes},
		{"short header", make([]byte, HeaderBytes-1), ErrHeaderBytes},
		{"zero capacity", make([]byte, HeaderBytes), ErrZeroCapacity},
		{
			"capacity exceeds buffer",
			header(Header{Capacity: 4}, RequiredSize(3, testRecordBytes)),
			nil,
		},
		{
			"capacity overflows",
			header(Header{Capacity: ^uint64(0)}, HeaderBytes),
			ErrSizeOverflow,
		},
		{
			"length exceeds capacity",
			header(Header{Capacity: 2, Length: 3}, RequiredSize(2, testRecordBytes)),
			ErrInconsistentHeader,
		},
		{
			"next ahead of length",
			header(Header{Capacity: 4, Length: 1, NextIndex: 2}, RequiredSize(4, testRecordBytes)),
			ErrInconsistentHeader,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.buf, testRecordBytes)
			require.ErrorIs(t, err, ErrLayout)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := FromBytes(header(Header{Capacity: 1}, RequiredSize(1, testRecordBytes)), 0)
	require.ErrorIs(t, err, ErrLayout)
	require.ErrorIs(t, err, ErrBadRecordSize)
}
