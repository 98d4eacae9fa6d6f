package cyclic

/*

# Fixed-capacity cyclic record log (in-place)

This package lays a ring of fixed-size records directly over a caller supplied
byte slice. Nothing is allocated and nothing is copied out of the buffer: a
`Log` is a view, and the buffer remains owned by the caller. A buffer that was
populated by one process (or one program invocation) can be re-opened with
`FromBytes` and appended to again.

## Layout

All integers are little-endian.

	+----------------------+  24B header
	| capacity    uint64   |
	| length      uint64   |  saturates at capacity
	| nextIndex   uint64   |  total appends mod capacity
	+----------------------+  capacity * recordBytes
	| record 0             |
	| record 1             |
	| ...                  |
	| record capacity-1    |
	+----------------------+

There is no per-record validity flag. Slots at or beyond `length` are
zero-filled and never read. Once the ring has been filled, `Append` overwrites
the oldest record without error.

## Order

The newest record is at `(nextIndex - 1 + capacity) % capacity`. Walking
backwards from there with `Prev` visits records newest to oldest; the walk ends
at slot 0 unless the ring has been filled at least once, in which case it wraps
to `capacity - 1`.

## Concurrency

There is no locking. The caller provides exclusion: a single writer, or any
number of readers with no writer active.

*/
