package changelog

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// State is a self describing export of a changelog, for tooling that wants the
// contents without the binary layout. Entries are ordered oldest first.
type State struct {
	Capacity  uint64       `cbor:"1,keyasint"`
	Length    uint64       `cbor:"2,keyasint"`
	NextIndex uint64       `cbor:"3,keyasint"`
	Entries   []StateEntry `cbor:"4,keyasint"`
}

// StateEntry is one exported entry.
type StateEntry struct {
	Key   []byte `cbor:"1,keyasint"`
	Value uint64 `cbor:"2,keyasint"`
}

// State exports the live entries, oldest first.
func (c *Changelog) State() State {
	h := c.entries.Header()
	st := State{
		Capacity:  h.Capacity,
		Length:    h.Length,
		NextIndex: h.NextIndex,
		Entries:   make([]StateEntry, 0, h.Length),
	}
	if h.Length == 0 {
		return st
	}
	i := c.entries.OldestIndex()
	for n := uint64(0); n < h.Length; n++ {
		e := DecodeEntry(c.entries.Slot(i))
		st.Entries = append(st.Entries, StateEntry{Key: append([]byte(nil), e.Key[:]...), Value: e.Value})
		i = (i + 1) % h.Capacity
	}
	return st
}

var (
	stateEncOpts = dtcbor.NewDeterministicEncOpts()
	stateDecOpts = dtcbor.NewDeterministicDecOpts()
)

// NewStateCodec returns a deterministic CBOR codec for State values.
func NewStateCodec() (dtcbor.CBORCodec, error) {
	return dtcbor.NewCBORCodec(stateEncOpts, stateDecOpts)
}

// EncodeState encodes st with codec.
func EncodeState(codec dtcbor.CBORCodec, st State) ([]byte, error) {
	return codec.MarshalCBOR(st)
}

// DecodeState decodes a State encoded by EncodeState.
func DecodeState(codec dtcbor.CBORCodec, data []byte) (State, error) {
	var st State
	if err := codec.UnmarshalInto(data, &st); err != nil {
		return State{}, err
	}
	return st, nil
}
