package bitvec

// AddRange inserts every member of the inclusive interval [start, end].
// It returns a *RangeError and leaves b unchanged when start > end.
func (b *Bitset) AddRange(start, end uint) error {
	if start > end {
		return &RangeError{Start: start, End: end}
	}

	first, last := wordIndex(start), wordIndex(end)
	if last >= b.buf.Len() {
		b.buf.Grow(last + 1)
	}

	w := b.buf.Words()
	lo, hi := bitOffset(start), bitOffset(end)

	if first == last {
		w[first] |= rangeMask(lo, hi)
		return nil
	}

	w[first] |= rangeMask(lo, wordBits-1)
	for i := first + 1; i < last; i++ {
		w[i] = allOnes
	}
	w[last] |= rangeMask(0, hi)
	return nil
}

// RemoveRange deletes every member of the inclusive interval [start, end].
// It returns a *RangeError and leaves b unchanged when start > end.
// Like AddRange it grows the buffer to cover end; the new words stay zero.
func (b *Bitset) RemoveRange(start, end uint) error {
	if start > end {
		return &RangeError{Start: start, End: end}
	}

	first, last := wordIndex(start), wordIndex(end)
	if last >= b.buf.Len() {
		b.buf.Grow(last + 1)
	}

	w := b.buf.Words()
	lo, hi := bitOffset(start), bitOffset(end)

	if first == last {
		w[first] &^= rangeMask(lo, hi)
		return nil
	}

	w[first] &^= rangeMask(lo, wordBits-1)
	clear(w[first+1 : last])
	w[last] &^= rangeMask(0, hi)
	return nil
}
