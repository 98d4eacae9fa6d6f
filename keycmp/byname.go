package keycmp

import (
	"fmt"
	"strings"
)

const (
	NameBytes    = "bytes"
	NameWords    = "words"
	NameXORFold  = "xorfold"
	NameIdentity = "identity"
)

// Names lists the comparator names accepted by ByName.
func Names() []string {
	return []string{NameBytes, NameWords, NameXORFold, NameIdentity}
}

// ByName resolves a comparator from its configuration name. Matching is case
// insensitive. The empty name selects the canonical comparator.
func ByName(name string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameBytes:
		return Bytes, nil
	case NameWords:
		return Words, nil
	case NameXORFold:
		return XORFold, nil
	case NameIdentity:
		return Identity(Bytes), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComparator, name)
	}
}
