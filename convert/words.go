package convert

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec"
	"github.com/kelindar/bitmap"
)

// ToBitSet copies b into a bits-and-blooms BitSet.
func ToBitSet(b *bitvec.Bitset) *bitset.BitSet {
	if b == nil {
		return bitset.New(0)
	}
	return bitset.From(slices.Clone(b.Words()))
}

// FromBitSet copies a bits-and-blooms BitSet into a new Bitset.
func FromBitSet(bs *bitset.BitSet) *bitvec.Bitset {
	if bs == nil {
		return bitvec.New()
	}
	return bitvec.FromWords(bs.Words())
}

// ToKelindar copies b into a kelindar bitmap.
func ToKelindar(b *bitvec.Bitset) bitmap.Bitmap {
	if b == nil {
		return nil
	}
	return bitmap.Bitmap(slices.Clone(b.Words()))
}

// FromKelindar copies a kelindar bitmap into a new Bitset.
func FromKelindar(bm bitmap.Bitmap) *bitvec.Bitset {
	return bitvec.FromWords([]uint64(bm))
}
