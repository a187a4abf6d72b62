package bitvec

import (
	"encoding/binary"
	"math/bits"

	gojson "github.com/goccy/go-json"
)

// Binary format
//
// The encoding is the sequence of words in ascending index order, each
// little-endian, up to and including the highest non-zero word. The last word
// is cut to the fewest bytes that still cover its highest set bit, so the
// result never ends in a zero byte. The empty set encodes to zero bytes.

// Bytes returns the minimal little-endian encoding of b.
func (b *Bitset) Bytes() []byte {
	w := b.buf.Words()
	highest := highestNonZero(w)
	if highest < 0 {
		return []byte{}
	}

	last := w[highest]
	tail := (wordBits-1-bits.LeadingZeros64(last))/8 + 1

	out := make([]byte, highest*8+tail)
	for i, word := range w[:highest] {
		binary.LittleEndian.PutUint64(out[i*8:], word)
	}
	for j := 0; j < tail; j++ {
		out[highest*8+j] = byte(last >> (8 * j))
	}
	return out
}

// FromBytes decodes a Bitset produced by Bytes. Any byte slice is valid
// input; trailing zero words are dropped so the result's WordCount matches
// what Bytes would need.
func FromBytes(data []byte) *Bitset {
	b := &Bitset{}
	b.setBytes(data)
	return b
}

func (b *Bitset) setBytes(data []byte) {
	b.buf.Reset(true)

	n := (len(data) + 7) / 8
	if n == 0 {
		return
	}
	b.buf.Grow(n)
	w := b.buf.Words()

	full := len(data) / 8
	for i := 0; i < full; i++ {
		w[i] = binary.LittleEndian.Uint64(data[i*8:])
	}

	// Partial last word: place the remaining bytes in the low end.
	if rem := data[full*8:]; len(rem) > 0 {
		var word uint64
		for j, c := range rem {
			word |= uint64(c) << (8 * j)
		}
		w[full] = word
	}

	b.buf.Trim()
}

// MarshalBinary implements encoding.BinaryMarshaler using the format of Bytes.
func (b *Bitset) MarshalBinary() ([]byte, error) {
	return b.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// content of b.
func (b *Bitset) UnmarshalBinary(data []byte) error {
	b.setBytes(data)
	return nil
}

// MarshalJSON encodes b as an ascending JSON array of members.
func (b *Bitset) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(b.ToSlice())
}

// UnmarshalJSON replaces the content of b with the members of a JSON array.
// Negative or non-integer entries are rejected and leave b unchanged.
func (b *Bitset) UnmarshalJSON(data []byte) error {
	var members []uint
	if err := gojson.Unmarshal(data, &members); err != nil {
		return err
	}
	b.buf.Reset(true)
	b.AddMany(members)
	return nil
}
