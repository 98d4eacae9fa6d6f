// Package changelog provides a keyed, fixed-capacity change log that lives
// entirely inside a caller supplied byte buffer.
//
// Each entry pairs a 32 byte key with a uint64 value. Entries are appended to a
// cyclic.Log; once the log is full the oldest entry is overwritten. The latest
// value for a key is found by scanning backwards from the newest entry, so
// "most recent wins" falls out of write order alone and no timestamps are
// stored.
//
// Scans can be bounded with an iteration budget. The budget is a hard cap:
// it is honoured even when the key is absent from the log.
//
// WithKeyFilter pairs the log with a keyfilter.Filter held in a second buffer.
// Lookups for keys the filter rules out then return without scanning.
//
//	buf := make([]byte, changelog.RequiredSize(1000))
//	cl, err := changelog.New(buf, 1000)
//	...
//	cl.Append(mint, 100)
//	v, ok := cl.FindLatestWithin(mint, 10)
//
// The entry record is 40 bytes, value first:
//
//	+------------------+----------------------------+
//	| value uint64 LE  | key [32]byte               |
//	+------------------+----------------------------+
//	0                  8                            40
package changelog
