package bitvec

const (
	wordBits     = 64
	log2WordBits = 6
	allOnes      = ^uint64(0)
)

// wordIndex maps a member to the index of the word holding it.
func wordIndex(v uint) int {
	return int(v >> log2WordBits)
}

// bitOffset maps a member to its bit position within its word.
func bitOffset(v uint) uint {
	return v & (wordBits - 1)
}

// bitMask returns the single-bit mask for v within its word.
func bitMask(v uint) uint64 {
	return uint64(1) << bitOffset(v)
}

// rangeMask returns a word with bits lo..hi (inclusive) set.
// A shift by 64 yields 0 in Go, so hi == 63 produces the full upper part.
func rangeMask(lo, hi uint) uint64 {
	return ((uint64(1) << (hi + 1)) - 1) ^ ((uint64(1) << lo) - 1)
}

// memberAt converts a word index and a bit position back to a member.
func memberAt(word int, bit int) uint {
	return uint(word)<<log2WordBits | uint(bit)
}

// highestNonZero returns the index of the last non-zero word, or -1.
func highestNonZero(w []uint64) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return i
		}
	}
	return -1
}
