package changelog

// Probe describes the outcome of a backward scan.
type Probe struct {
	// Value is the matching entry's value. Zero unless Found.
	Value uint64
	// Slot is the raw slot of the match. Zero unless Found.
	Slot uint64
	// Steps is the number of entries compared, including the match.
	Steps uint64
	Found bool
	// Filtered is set when the key filter ruled the key out before any
	// comparison.
	Filtered bool
}

// FindLatest returns the value most recently appended for key, scanning every
// live entry if necessary.
func (c *Changelog) FindLatest(key Key) (uint64, bool) {
	p := c.scan(&key, Unbounded)
	return p.Value, p.Found
}

// FindLatestWithin is FindLatest limited to comparing at most budget entries,
// newest first. A budget of 0 never matches.
func (c *Changelog) FindLatestWithin(key Key, budget uint64) (uint64, bool) {
	p := c.scan(&key, budget)
	return p.Value, p.Found
}

// Probe runs the same scan as FindLatestWithin and reports where, and after
// how many comparisons, the scan ended. Pass Unbounded for an unlimited scan.
func (c *Changelog) Probe(key Key, budget uint64) Probe {
	return c.scan(&key, budget)
}

// scan walks backwards from the newest entry. It stops at the first match, after
// min(budget, Len()) comparisons, or on reaching slot 0 of a log that has
// never wrapped. Keys the filter rules out are not scanned at all.
func (c *Changelog) scan(key *Key, budget uint64) Probe {
	maxSteps := min(budget, c.entries.Len())
	if maxSteps == 0 {
		return Probe{}
	}
	if c.filter != nil && !c.filter.MaybeContains(key) {
		return Probe{Filtered: true}
	}

	cursor := c.entries.LastIndex()
	for steps := uint64(1); ; steps++ {
		rec := c.entries.Slot(cursor)
		if c.cmp.Equal(EntryKey(rec), key) {
			return Probe{Value: EntryValue(rec), Slot: cursor, Steps: steps, Found: true}
		}
		if steps == maxSteps {
			return Probe{Steps: steps}
		}
		prev, ok := c.entries.Prev(cursor)
		if !ok {
			return Probe{Steps: steps}
		}
		cursor = prev
	}
}
