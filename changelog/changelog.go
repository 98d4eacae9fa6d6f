package changelog

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-changelog/cyclic"
	"github.com/forestrie/go-changelog/keycmp"
	"github.com/forestrie/go-changelog/keyfilter"
)

// Changelog is a keyed view over a cyclic.Log of encoded entries. It holds no
// state of its own beyond the view; the buffer is the log.
type Changelog struct {
	entries *cyclic.Log
	cmp     keycmp.Comparator
	log     logger.Logger
	filter  *keyfilter.Filter
}

// RequiredSize returns the exact buffer length for a changelog of capacity
// entries.
func RequiredSize(capacity uint64) uint64 {
	return cyclic.RequiredSize(capacity, EntryBytes)
}

// New initializes an empty changelog in buf.
//
// buf must be exactly RequiredSize(capacity) bytes, otherwise the error wraps
// ErrSizeMismatch.
func New(buf []byte, capacity uint64, opts ...Option) (*Changelog, error) {
	o := newOptions(opts...)

	entries, err := cyclic.Init(buf, capacity, EntryBytes)
	if err != nil {
		return nil, err
	}
	if o.filter != nil {
		o.filter.Reset()
	}
	if o.log != nil {
		o.log.Debugf("changelog: initialized capacity=%d, bytes=%d", capacity, len(buf))
	}
	return newChangelog(entries, o), nil
}

// FromBytes opens a changelog previously initialized in buf, without
// modifying it. An attached key filter is rebuilt from the live entries.
//
// If buf does not hold a valid changelog the error wraps ErrLayout.
func FromBytes(buf []byte, opts ...Option) (*Changelog, error) {
	o := newOptions(opts...)

	entries, err := cyclic.FromBytes(buf, EntryBytes)
	if err != nil {
		return nil, err
	}
	if o.log != nil {
		h := entries.Header()
		o.log.Debugf(
			"changelog: opened capacity=%d, length=%d, nextIndex=%d",
			h.Capacity, h.Length, h.NextIndex)
	}
	c := newChangelog(entries, o)
	// Views opened without the filter may have appended since it was last
	// paired, and its counter cannot show that.
	c.RebuildFilter()
	return c, nil
}

func newChangelog(entries *cyclic.Log, o Options) *Changelog {
	return &Changelog{entries: entries, cmp: o.comparator, log: o.log, filter: o.filter}
}

// Append records value as the latest value for key. The oldest entry is
// overwritten once the log is full.
func (c *Changelog) Append(key Key, value uint64) {
	c.Push(Entry{Key: key, Value: value})
}

// Push appends e.
func (c *Changelog) Push(e Entry) {
	var rec [EntryBytes]byte
	EncodeEntry(rec[:], e)
	c.entries.Append(rec[:])
	if c.filter != nil {
		c.filter.Insert(&e.Key)
	}
}

// RebuildFilter resets the key filter and inserts the key of every live entry,
// dropping keys that have since been overwritten. It does nothing if the
// changelog has no filter.
func (c *Changelog) RebuildFilter() {
	if c.filter == nil {
		return
	}
	c.filter.Reset()
	for i := uint64(0); i < c.entries.Len(); i++ {
		c.filter.Insert(EntryKey(c.entries.Slot(i)))
	}
	if c.log != nil {
		c.log.Debugf("changelog: rebuilt key filter from %d entries", c.entries.Len())
	}
}

// Get returns the entry at raw slot i, if that slot has been written.
func (c *Changelog) Get(i uint64) (Entry, bool) {
	rec, ok := c.entries.Record(i)
	if !ok {
		return Entry{}, false
	}
	return DecodeEntry(rec), true
}

// Len returns the number of live entries.
func (c *Changelog) Len() uint64 { return c.entries.Len() }

// Capacity returns the maximum number of live entries.
func (c *Changelog) Capacity() uint64 { return c.entries.Capacity() }

// LastIndex returns the slot of the newest entry.
// Only meaningful when Len() > 0.
func (c *Changelog) LastIndex() uint64 { return c.entries.LastIndex() }

// NextIndex returns the slot the next append writes.
func (c *Changelog) NextIndex() uint64 { return c.entries.NextIndex() }

// Bytes returns the backing buffer.
func (c *Changelog) Bytes() []byte { return c.entries.Bytes() }

// Filter returns the key filter, or nil.
func (c *Changelog) Filter() *keyfilter.Filter { return c.filter }

// Entries returns the underlying record log.
func (c *Changelog) Entries() *cyclic.Log { return c.entries }

func (c *Changelog) String() string {
	h := c.entries.Header()
	return fmt.Sprintf("changelog(capacity=%d, length=%d, nextIndex=%d)", h.Capacity, h.Length, h.NextIndex)
}
