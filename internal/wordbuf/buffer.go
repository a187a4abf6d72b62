package wordbuf

// DefaultCapacity is the capacity in words used by Reset(false) and New(0).
const DefaultCapacity = 8

// Buffer is an exclusively owned, growable []uint64.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	words []uint64
}

// New creates an empty buffer with room for capacity words.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Buffer{words: make([]uint64, 0, capacity)}
}

// FromWords creates a buffer holding a copy of src.
func FromWords(src []uint64) Buffer {
	b := Buffer{}
	if len(src) == 0 {
		return b
	}
	b.Grow(len(src))
	copy(b.words, src)
	return b
}

// Words returns the logical words. The slice aliases the buffer and is only
// valid until the next Grow or Reset.
func (b *Buffer) Words() []uint64 {
	return b.words
}

// Len returns the number of words in use.
func (b *Buffer) Len() int {
	return len(b.words)
}

// Cap returns the number of words allocated.
func (b *Buffer) Cap() int {
	return cap(b.words)
}

// Grow extends the buffer to n words, zero-filling the new ones.
// It is a no-op when n <= Len.
func (b *Buffer) Grow(n int) {
	current := len(b.words)
	if n <= current {
		return
	}

	if n > cap(b.words) {
		newWords := make([]uint64, n, 2*n)
		copy(newWords, b.words)
		b.words = newWords
		return
	}

	// Words past len may hold stale data from before a Reset or Trim.
	b.words = b.words[:n]
	clear(b.words[current:])
}

// Reset empties the buffer. With keepCapacity false the allocation is
// released and replaced by a DefaultCapacity one.
func (b *Buffer) Reset(keepCapacity bool) {
	if keepCapacity {
		b.words = b.words[:0]
		return
	}
	b.words = make([]uint64, 0, DefaultCapacity)
}

// Trim drops trailing all-zero words. Capacity is unchanged.
func (b *Buffer) Trim() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	b.words = b.words[:n]
}

// Clone returns a deep copy of the logical words. The copy's capacity equals
// its length.
func (b *Buffer) Clone() Buffer {
	if len(b.words) == 0 {
		return Buffer{}
	}
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Buffer{words: words}
}
