package words

import "math/bits"

// Kernel function pointers - set once at init.
var (
	kernelAndWords    = andWordsGeneric
	kernelAndNotWords = andNotWordsGeneric
	kernelOrWords     = orWordsGeneric
	kernelXorWords    = xorWordsGeneric
	kernelPopcount    = popcountGeneric
	kernelAndCount    = andCountGeneric
	kernelAndNotCount = andNotCountGeneric
	kernelOrCount     = orCountGeneric
	kernelXorCount    = xorCountGeneric
)

// useUnrolled switches every kernel to its 4-way unrolled variant.
func useUnrolled() {
	kernelAndWords = andWordsUnrolled
	kernelAndNotWords = andNotWordsUnrolled
	kernelOrWords = orWordsUnrolled
	kernelXorWords = xorWordsUnrolled
	kernelPopcount = popcountUnrolled
	kernelAndCount = andCountUnrolled
	kernelAndNotCount = andNotCountUnrolled
	kernelOrCount = orCountUnrolled
	kernelXorCount = xorCountUnrolled
}

// useGeneric switches every kernel back to the plain loops.
func useGeneric() {
	kernelAndWords = andWordsGeneric
	kernelAndNotWords = andNotWordsGeneric
	kernelOrWords = orWordsGeneric
	kernelXorWords = xorWordsGeneric
	kernelPopcount = popcountGeneric
	kernelAndCount = andCountGeneric
	kernelAndNotCount = andNotCountGeneric
	kernelOrCount = orCountGeneric
	kernelXorCount = xorCountGeneric
}

// AndWords performs dst[i] &= src[i] for all words.
//
// SAFETY: Assumes len(src) >= len(dst).
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src)
}

// AndNotWords performs dst[i] &^= src[i] for all words.
//
// SAFETY: Assumes len(src) >= len(dst).
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src)
}

// OrWords performs dst[i] |= src[i] for all words.
//
// SAFETY: Assumes len(src) >= len(dst).
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src)
}

// XorWords performs dst[i] ^= src[i] for all words.
//
// SAFETY: Assumes len(src) >= len(dst).
func XorWords(dst, src []uint64) {
	kernelXorWords(dst, src)
}

// PopcountWords counts all set bits across words.
func PopcountWords(w []uint64) int {
	return kernelPopcount(w)
}

// AndCount returns popcount(a[i] & b[i]) summed over len(a) words.
//
// SAFETY: Assumes len(b) >= len(a).
func AndCount(a, b []uint64) int {
	return kernelAndCount(a, b)
}

// AndNotCount returns popcount(a[i] &^ b[i]) summed over len(a) words.
func AndNotCount(a, b []uint64) int {
	return kernelAndNotCount(a, b)
}

// OrCount returns popcount(a[i] | b[i]) summed over len(a) words.
func OrCount(a, b []uint64) int {
	return kernelOrCount(a, b)
}

// XorCount returns popcount(a[i] ^ b[i]) summed over len(a) words.
func XorCount(a, b []uint64) int {
	return kernelXorCount(a, b)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func andWordsGeneric(dst, src []uint64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] &= src[i]
	}
}

func andNotWordsGeneric(dst, src []uint64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] &^= src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] |= src[i]
	}
}

func xorWordsGeneric(dst, src []uint64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func popcountGeneric(w []uint64) int {
	count := 0
	for _, x := range w {
		count += bits.OnesCount64(x)
	}
	return count
}

func andCountGeneric(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	for i := range a {
		count += bits.OnesCount64(a[i] & b[i])
	}
	return count
}

func andNotCountGeneric(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	for i := range a {
		count += bits.OnesCount64(a[i] &^ b[i])
	}
	return count
}

func orCountGeneric(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	for i := range a {
		count += bits.OnesCount64(a[i] | b[i])
	}
	return count
}

func xorCountGeneric(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	for i := range a {
		count += bits.OnesCount64(a[i] ^ b[i])
	}
	return count
}

// ==============================================================================
// Unrolled implementations
// ==============================================================================

func andWordsUnrolled(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWordsUnrolled(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

func orWordsUnrolled(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func xorWordsUnrolled(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func popcountUnrolled(w []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(w); i += 4 {
		count += bits.OnesCount64(w[i])
		count += bits.OnesCount64(w[i+1])
		count += bits.OnesCount64(w[i+2])
		count += bits.OnesCount64(w[i+3])
	}
	for ; i < len(w); i++ {
		count += bits.OnesCount64(w[i])
	}
	return count
}

func andCountUnrolled(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	i := 0
	for ; i+4 <= len(a); i += 4 {
		count += bits.OnesCount64(a[i] & b[i])
		count += bits.OnesCount64(a[i+1] & b[i+1])
		count += bits.OnesCount64(a[i+2] & b[i+2])
		count += bits.OnesCount64(a[i+3] & b[i+3])
	}
	for ; i < len(a); i++ {
		count += bits.OnesCount64(a[i] & b[i])
	}
	return count
}

func andNotCountUnrolled(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	i := 0
	for ; i+4 <= len(a); i += 4 {
		count += bits.OnesCount64(a[i] &^ b[i])
		count += bits.OnesCount64(a[i+1] &^ b[i+1])
		count += bits.OnesCount64(a[i+2] &^ b[i+2])
		count += bits.OnesCount64(a[i+3] &^ b[i+3])
	}
	for ; i < len(a); i++ {
		count += bits.OnesCount64(a[i] &^ b[i])
	}
	return count
}

func orCountUnrolled(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	i := 0
	for ; i+4 <= len(a); i += 4 {
		count += bits.OnesCount64(a[i] | b[i])
		count += bits.OnesCount64(a[i+1] | b[i+1])
		count += bits.OnesCount64(a[i+2] | b[i+2])
		count += bits.OnesCount64(a[i+3] | b[i+3])
	}
	for ; i < len(a); i++ {
		count += bits.OnesCount64(a[i] | b[i])
	}
	return count
}

func xorCountUnrolled(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	i := 0
	for ; i+4 <= len(a); i += 4 {
		count += bits.OnesCount64(a[i] ^ b[i])
		count += bits.OnesCount64(a[i+1] ^ b[i+1])
		count += bits.OnesCount64(a[i+2] ^ b[i+2])
		count += bits.OnesCount64(a[i+3] ^ b[i+3])
	}
	for ; i < len(a); i++ {
		count += bits.OnesCount64(a[i] ^ b[i])
	}
	return count
}
