package bitvec

// Equal reports whether b and other hold the same members. Trailing
// all-zero words on either side are ignored. A nil Bitset equals the empty set.
func (b *Bitset) Equal(other *Bitset) bool {
	long, short := wordsOf(b), wordsOf(other)
	if len(long) < len(short) {
		long, short = short, long
	}

	for _, w := range long[len(short):] {
		if w != 0 {
			return false
		}
	}
	for i, w := range short {
		if long[i] != w {
			return false
		}
	}
	return true
}

const (
	hashMul1 = 0xff51afd7ed558ccd
	hashMul2 = 0xc4ceb9fe1a85ec53
)

// Hash returns a 64-bit hash of the members.
//
// Words are folded with h = h*31 + w up to the highest non-zero word only,
// so sets that are Equal always hash equal regardless of trailing zero words.
// The fold is finished with a murmur3-style avalanche.
func (b *Bitset) Hash() uint64 {
	w := wordsOf(b)
	w = w[:highestNonZero(w)+1]

	var h uint64
	for _, word := range w {
		h = h*31 + word
	}

	h ^= h >> 33
	h *= hashMul1
	h ^= h >> 33
	h *= hashMul2
	h ^= h >> 33
	return h
}
