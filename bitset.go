package bitvec

import (
	"github.com/hupe1980/bitvec/internal/wordbuf"
	"github.com/hupe1980/bitvec/internal/words"
)

// Bitset is a growable set of non-negative integers stored as a bit-vector.
//
// Member v is present iff bit v%64 of word v/64 is set and that word is
// within WordCount. The buffer grows on demand and never shrinks except
// through Reset(false). The zero value is an empty set ready to use.
//
// A Bitset is not safe for concurrent use. Independent read-only iteration
// of an unmodified Bitset from several goroutines is safe.
type Bitset struct {
	buf wordbuf.Buffer
}

// New creates an empty Bitset.
func New(opts ...Option) *Bitset {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Bitset{buf: wordbuf.New(o.capacity)}
}

// Of creates a Bitset holding the given members.
func Of(values ...uint) *Bitset {
	b := New()
	b.AddMany(values)
	return b
}

// FromInts creates a Bitset from signed input. A negative value rejects the
// whole input with a *ValueError and no Bitset is returned.
func FromInts(values []int) (*Bitset, error) {
	members := make([]uint, len(values))
	for i, v := range values {
		if v < 0 {
			return nil, &ValueError{Index: i, Value: v}
		}
		members[i] = uint(v)
	}
	return Of(members...), nil
}

// FromWords creates a Bitset from raw words using the package's bit layout
// (member v lives in bit v%64 of word v/64). src is copied.
func FromWords(src []uint64) *Bitset {
	return &Bitset{buf: wordbuf.FromWords(src)}
}

// Clone returns a deep copy of b.
func (b *Bitset) Clone() *Bitset {
	return &Bitset{buf: b.buf.Clone()}
}

// Add inserts v, growing the buffer if needed.
func (b *Bitset) Add(v uint) {
	i := wordIndex(v)
	if i >= b.buf.Len() {
		b.buf.Grow(i + 1)
	}
	b.buf.Words()[i] |= bitMask(v)
}

// Remove deletes v. Removing an absent member is a no-op.
func (b *Bitset) Remove(v uint) {
	i := wordIndex(v)
	if i >= b.buf.Len() {
		return
	}
	b.buf.Words()[i] &^= bitMask(v)
}

// Flip toggles v. Flipping a member beyond the current words always makes
// it present.
func (b *Bitset) Flip(v uint) {
	i := wordIndex(v)
	if i >= b.buf.Len() {
		b.buf.Grow(i + 1)
		b.buf.Words()[i] |= bitMask(v)
		return
	}
	b.buf.Words()[i] ^= bitMask(v)
}

// Contains reports whether v is a member. It never grows the buffer.
func (b *Bitset) Contains(v uint) bool {
	i := wordIndex(v)
	if i >= b.buf.Len() {
		return false
	}
	return b.buf.Words()[i]&bitMask(v) != 0
}

// SetTo adds v when present is true and removes it otherwise.
func (b *Bitset) SetTo(v uint, present bool) {
	if present {
		b.Add(v)
		return
	}
	b.Remove(v)
}

// AddMany inserts all values, growing the buffer at most once.
func (b *Bitset) AddMany(values []uint) {
	if len(values) == 0 {
		return
	}

	maxValue := values[0]
	for _, v := range values[1:] {
		maxValue = max(maxValue, v)
	}
	if i := wordIndex(maxValue); i >= b.buf.Len() {
		b.buf.Grow(i + 1)
	}

	w := b.buf.Words()
	for _, v := range values {
		w[wordIndex(v)] |= bitMask(v)
	}
}

// RemoveMany deletes all values.
func (b *Bitset) RemoveMany(values []uint) {
	for _, v := range values {
		b.Remove(v)
	}
}

// Count returns the number of members.
func (b *Bitset) Count() int {
	return words.PopcountWords(b.buf.Words())
}

// IsEmpty reports whether b has no members.
func (b *Bitset) IsEmpty() bool {
	return highestNonZero(b.buf.Words()) < 0
}

// WordCount returns the number of 64-bit words logically in use.
func (b *Bitset) WordCount() int {
	return b.buf.Len()
}

// Capacity returns the number of 64-bit words allocated.
func (b *Bitset) Capacity() int {
	return b.buf.Cap()
}

// MemoryUsage returns the size of the allocated word buffer in bytes.
func (b *Bitset) MemoryUsage() int {
	return b.buf.Cap() * 8
}

// Words returns the logical words of b. The slice aliases b's storage: do not
// modify it, and do not retain it across mutations of b.
func (b *Bitset) Words() []uint64 {
	return b.buf.Words()
}

// Reset removes every member. With keepCapacity false the buffer is
// released and a small default one is allocated.
func (b *Bitset) Reset(keepCapacity bool) {
	b.buf.Reset(keepCapacity)
}

// Trim drops trailing all-zero words without touching capacity.
func (b *Bitset) Trim() {
	b.buf.Trim()
}

// wordsOf treats a nil Bitset as the empty set.
func wordsOf(b *Bitset) []uint64 {
	if b == nil {
		return nil
	}
	return b.buf.Words()
}
