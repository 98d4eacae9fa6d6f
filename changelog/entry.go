package changelog

import "encoding/binary"

// Entry is a single key/value record.
type Entry struct {
	Key   Key
	Value uint64
}

// NewEntry returns the entry pairing key with value.
func NewEntry(key Key, value uint64) Entry {
	return Entry{Key: key, Value: value}
}

// EncodeEntry writes e into dst.
// Caller must ensure dst is at least EntryBytes long.
func EncodeEntry(dst []byte, e Entry) {
	binary.LittleEndian.PutUint64(dst[entryValueOff:entryValueOff+ValueBytes], e.Value)
	copy(dst[entryKeyOff:EntryBytes], e.Key[:])
}

// DecodeEntry reads an entry from src.
// Caller must ensure src is at least EntryBytes long.
func DecodeEntry(src []byte) Entry {
	return Entry{Key: *EntryKey(src), Value: EntryValue(src)}
}

// EntryKey returns the key field of an encoded entry. The result aliases rec.
func EntryKey(rec []byte) *Key {
	return (*Key)(rec[entryKeyOff:EntryBytes])
}

// EntryValue returns the value field of an encoded entry.
func EntryValue(rec []byte) uint64 {
	return binary.LittleEndian.Uint64(rec[entryValueOff : entryValueOff+ValueBytes])
}
