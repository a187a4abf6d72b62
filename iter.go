package bitvec

import (
	"iter"
	"math"
	"math/bits"
)

// Iterator walks the members of a Bitset in ascending order.
//
// Each call to Next resumes from the member after the last one returned, so
// an Iterator over an unmodified Bitset is independent of any other Iterator
// over the same Bitset. Mutating the Bitset while iterating is not supported.
type Iterator struct {
	b    *Bitset
	next uint
	done bool
}

// Iterator returns a new Iterator positioned before the smallest member.
func (b *Bitset) Iterator() *Iterator {
	return &Iterator{b: b}
}

// Next returns the next member and true, or 0 and false once exhausted.
func (it *Iterator) Next() (uint, bool) {
	if it.done {
		return 0, false
	}

	v, ok := it.b.NextSet(it.next)
	if !ok {
		it.done = true
		return 0, false
	}

	if v == math.MaxUint {
		it.done = true
	} else {
		it.next = v + 1
	}
	return v, true
}

// Reset rewinds the Iterator to the beginning.
func (it *Iterator) Reset() {
	it.next = 0
	it.done = false
}

// NextSet returns the smallest member >= from.
func (b *Bitset) NextSet(from uint) (uint, bool) {
	w := b.buf.Words()
	i := wordIndex(from)
	if i >= len(w) {
		return 0, false
	}

	// Shift away the bits below from within its own word.
	if word := w[i] >> bitOffset(from); word != 0 {
		return from + uint(bits.TrailingZeros64(word)), true
	}

	for i++; i < len(w); i++ {
		if w[i] != 0 {
			return memberAt(i, bits.TrailingZeros64(w[i])), true
		}
	}
	return 0, false
}

// First returns the smallest member, or false if b is empty.
func (b *Bitset) First() (uint, bool) {
	for i, word := range b.buf.Words() {
		if word != 0 {
			return memberAt(i, bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Last returns the largest member, or false if b is empty.
func (b *Bitset) Last() (uint, bool) {
	w := b.buf.Words()
	i := highestNonZero(w)
	if i < 0 {
		return 0, false
	}
	return memberAt(i, wordBits-1-bits.LeadingZeros64(w[i])), true
}

// All returns an iterator over the members in ascending order.
// The sequence is restartable: every range over it starts from the beginning.
func (b *Bitset) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		b.ForEach(yield)
	}
}

// ForEach calls fn for each member in ascending order until fn returns false.
func (b *Bitset) ForEach(fn func(uint) bool) {
	for i, word := range b.buf.Words() {
		for word != 0 {
			if !fn(memberAt(i, bits.TrailingZeros64(word))) {
				return
			}
			word &= word - 1 // Clear lowest bit
		}
	}
}

// ToSlice returns the members in ascending order. An empty set yields an
// empty, non-nil slice.
func (b *Bitset) ToSlice() []uint {
	out := make([]uint, 0, b.Count())
	b.ForEach(func(v uint) bool {
		out = append(out, v)
		return true
	})
	return out
}
