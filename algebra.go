package bitvec

import "github.com/hupe1980/bitvec/internal/words"

// ==============================================================================
// In-place forms
// ==============================================================================
//
// All four operators work word by word over the shorter operand and then
// apply a per-operator rule to the tail of the longer one. A nil operand is
// treated as the empty set.

// InPlaceUnion sets b to b ∪ other. b grows to other's word count and the
// words past b's old length are copied from other.
func (b *Bitset) InPlaceUnion(other *Bitset) {
	ow := wordsOf(other)
	n := b.buf.Len()
	if len(ow) > n {
		b.buf.Grow(len(ow))
		copy(b.buf.Words()[n:], ow[n:])
	}
	shared := min(n, len(ow))
	words.OrWords(b.buf.Words()[:shared], ow[:shared])
}

// InPlaceIntersection sets b to b ∩ other. Words of b past other's length
// are zeroed; WordCount is not reduced.
func (b *Bitset) InPlaceIntersection(other *Bitset) {
	ow := wordsOf(other)
	bw := b.buf.Words()
	shared := min(len(bw), len(ow))
	words.AndWords(bw[:shared], ow[:shared])
	clear(bw[shared:])
}

// InPlaceDifference sets b to b \ other. b never grows and its words past
// other's length are unchanged.
func (b *Bitset) InPlaceDifference(other *Bitset) {
	ow := wordsOf(other)
	bw := b.buf.Words()
	shared := min(len(bw), len(ow))
	words.AndNotWords(bw[:shared], ow[:shared])
}

// InPlaceSymmetricDifference sets b to b △ other. b grows to other's word
// count and the words past b's old length are copied from other.
func (b *Bitset) InPlaceSymmetricDifference(other *Bitset) {
	ow := wordsOf(other)
	n := b.buf.Len()
	if len(ow) > n {
		b.buf.Grow(len(ow))
		copy(b.buf.Words()[n:], ow[n:])
	}
	shared := min(n, len(ow))
	words.XorWords(b.buf.Words()[:shared], ow[:shared])
}

// ==============================================================================
// Count-only forms
// ==============================================================================
//
// Each returns the cardinality its in-place counterpart would produce,
// without allocating or touching either operand.

// UnionCount returns |b ∪ other|.
func (b *Bitset) UnionCount(other *Bitset) int {
	short, long := wordsOf(b), wordsOf(other)
	if len(short) > len(long) {
		short, long = long, short
	}
	return words.OrCount(short, long) + words.PopcountWords(long[len(short):])
}

// IntersectionCount returns |b ∩ other|.
func (b *Bitset) IntersectionCount(other *Bitset) int {
	bw, ow := wordsOf(b), wordsOf(other)
	shared := min(len(bw), len(ow))
	return words.AndCount(bw[:shared], ow[:shared])
}

// DifferenceCount returns |b \ other|.
func (b *Bitset) DifferenceCount(other *Bitset) int {
	bw, ow := wordsOf(b), wordsOf(other)
	shared := min(len(bw), len(ow))
	return words.AndNotCount(bw[:shared], ow[:shared]) + words.PopcountWords(bw[shared:])
}

// SymmetricDifferenceCount returns |b △ other|.
func (b *Bitset) SymmetricDifferenceCount(other *Bitset) int {
	short, long := wordsOf(b), wordsOf(other)
	if len(short) > len(long) {
		short, long = long, short
	}
	return words.XorCount(short, long) + words.PopcountWords(long[len(short):])
}

// ==============================================================================
// Pure forms
// ==============================================================================

// Union returns a new Bitset holding b ∪ other.
func (b *Bitset) Union(other *Bitset) *Bitset {
	c := b.Clone()
	c.InPlaceUnion(other)
	return c
}

// Intersection returns a new Bitset holding b ∩ other.
func (b *Bitset) Intersection(other *Bitset) *Bitset {
	c := b.Clone()
	c.InPlaceIntersection(other)
	return c
}

// Difference returns a new Bitset holding b \ other.
func (b *Bitset) Difference(other *Bitset) *Bitset {
	c := b.Clone()
	c.InPlaceDifference(other)
	return c
}

// SymmetricDifference returns a new Bitset holding b △ other.
func (b *Bitset) SymmetricDifference(other *Bitset) *Bitset {
	c := b.Clone()
	c.InPlaceSymmetricDifference(other)
	return c
}
