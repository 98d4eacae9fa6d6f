package keyfilter

/*

# In-place key prefilter

A Bloom filter over 32-byte changelog keys, laid out in a caller supplied
region in the same way the changelog itself is:

	+----------------------+  32B header (magic, version, params, counter)
	| Header               |
	+----------------------+  ceil(mBits/8) bytes
	| bitset               |
	+----------------------+

"definitely not present" is exact. "maybe present" may be a false positive.

A changelog overwrites its oldest entries but a Bloom filter cannot forget,
so the filter covers every key inserted since it was last reset. That is a
superset of the live keys, which keeps the negative answer exact. Rebuilding
from the live entries sheds the overwritten ones.

## Bit numbering and indexing

Bit j lives in byte j>>3 at position j&7, least significant first.
Indices are derived by double hashing one xxhash64 digest of the key:

	h1 = low 32 bits, h2 = high 32 bits | 1
	idx_i = (h1 + i*h2) mod mBits,  i in [0, k)

All header integers are little-endian.

*/
