package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/bitvec"
)

// ErrValueOutOfRange is returned when a member does not fit the target type.
var ErrValueOutOfRange = errors.New("convert: value out of range")

// ToRoaring copies b into a 32-bit roaring bitmap.
func ToRoaring(b *bitvec.Bitset) (*roaring.Bitmap, error) {
	rb := roaring.New()
	if b == nil {
		return rb, nil
	}

	if last, ok := b.Last(); ok && uint64(last) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d exceeds uint32", ErrValueOutOfRange, last)
	}

	buf := make([]uint32, 0, b.Count())
	for v := range b.All() {
		buf = append(buf, uint32(v))
	}
	rb.AddMany(buf)
	return rb, nil
}

// FromRoaring copies a 32-bit roaring bitmap into a new Bitset.
func FromRoaring(rb *roaring.Bitmap) *bitvec.Bitset {
	if rb == nil || rb.IsEmpty() {
		return bitvec.New()
	}

	b := bitvec.New(bitvec.WithCapacityFor(uint(rb.Maximum())))
	it := rb.Iterator()
	for it.HasNext() {
		b.Add(uint(it.Next()))
	}
	return b
}

// ToRoaring64 copies b into a 64-bit roaring bitmap.
func ToRoaring64(b *bitvec.Bitset) *roaring64.Bitmap {
	rb := roaring64.New()
	if b == nil {
		return rb
	}

	buf := make([]uint64, 0, b.Count())
	for v := range b.All() {
		buf = append(buf, uint64(v))
	}
	rb.AddMany(buf)
	return rb
}

// FromRoaring64 copies a 64-bit roaring bitmap into a new Bitset.
//
// On 32-bit platforms members above the native uint width are rejected with
// ErrValueOutOfRange.
func FromRoaring64(rb *roaring64.Bitmap) (*bitvec.Bitset, error) {
	if rb == nil || rb.IsEmpty() {
		return bitvec.New(), nil
	}

	if maxv := rb.Maximum(); maxv > uint64(math.MaxUint) {
		return nil, fmt.Errorf("%w: %d exceeds uint", ErrValueOutOfRange, maxv)
	}

	b := bitvec.New(bitvec.WithCapacityFor(uint(rb.Maximum())))
	it := rb.Iterator()
	for it.HasNext() {
		b.Add(uint(it.Next()))
	}
	return b, nil
}
