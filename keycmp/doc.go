package keycmp

/*

# Fixed-width key equality

Changelog entries are keyed by a 32 byte value (typically an account or mint
address). Lookups compare the probe key against every visited entry, so key
equality is the inner loop of every scan.

There is exactly one contract:

	Equal(a, b) == (a[0] == b[0] && a[1] == b[1] && ... && a[31] == b[31])

for all inputs, including when a and b point at the same memory.

Several strategies are provided because their cost profiles differ with how
early (or whether) two keys diverge:

- `Bytes` is the canonical comparator and the default everywhere.
- `Words` compares four little-endian 64-bit words with an early exit.
- `XORFold` ORs together the XOR of every word pair and tests once, so its cost
  does not depend on where the keys differ.
- `Identity` wraps another comparator with a pointer-equality fast path.

They are interchangeable; choosing between them is a tuning decision, never a
behavioural one.

*/
