package convert

import (
	"math"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/testutil"
	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoaring_RoundTrip(t *testing.T) {
	src := bitvec.Of(0, 1, 63, 64, 4097, 1<<20)

	rb, err := ToRoaring(src)
	require.NoError(t, err)
	assert.Equal(t, uint64(src.Count()), rb.GetCardinality())
	assert.True(t, rb.Contains(4097))

	got := FromRoaring(rb)
	assert.True(t, got.Equal(src))
}

func TestRoaring_Empty(t *testing.T) {
	rb, err := ToRoaring(nil)
	require.NoError(t, err)
	assert.True(t, rb.IsEmpty())

	assert.True(t, FromRoaring(roaring.New()).IsEmpty())
	assert.True(t, FromRoaring(nil).IsEmpty())
}

func TestRoaring_OutOfRange(t *testing.T) {
	if math.MaxUint == math.MaxUint32 {
		t.Skip("uint is 32 bits")
	}

	big := uint64(math.MaxUint32) + 1
	src := bitvec.New()
	src.Add(uint(big))

	_, err := ToRoaring(src)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	rb := ToRoaring64(src)
	assert.True(t, rb.Contains(big))

	back, err := FromRoaring64(rb)
	require.NoError(t, err)
	assert.True(t, back.Equal(src))
}

func TestRoaring64_RoundTrip(t *testing.T) {
	src := bitvec.Of(2, 3, 5, 7, 11, 13, 10007)

	rb := ToRoaring64(src)
	assert.Equal(t, uint64(src.Count()), rb.GetCardinality())

	got, err := FromRoaring64(rb)
	require.NoError(t, err)
	assert.True(t, got.Equal(src))

	empty, err := FromRoaring64(roaring64.New())
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestBitSet_RoundTrip(t *testing.T) {
	src := bitvec.Of(1, 64, 129, 700)

	bs := ToBitSet(src)
	assert.Equal(t, uint(src.Count()), bs.Count())
	assert.True(t, bs.Test(700))

	// The copy must not alias src.
	bs.Set(5)
	assert.False(t, src.Contains(5))

	got := FromBitSet(bitset.New(0).Set(9).Set(300))
	assert.Equal(t, []uint{9, 300}, got.ToSlice())
	assert.True(t, FromBitSet(nil).IsEmpty())
}

func TestKelindar_RoundTrip(t *testing.T) {
	src := bitvec.Of(3, 65, 200)

	bm := ToKelindar(src)
	assert.Equal(t, src.Count(), bm.Count())
	assert.True(t, bm.Contains(65))

	var other bitmap.Bitmap
	other.Set(10)
	other.Set(130)
	got := FromKelindar(other)
	assert.Equal(t, []uint{10, 130}, got.ToSlice())

	assert.Nil(t, ToKelindar(nil))
}

// The external libraries serve as independent oracles for the set algebra.
func TestAlgebra_MatchesRoaring(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < 20; i++ {
		a := bitvec.Of(rng.Values(200, 5000)...)
		b := bitvec.Of(rng.Values(200, 5000)...)

		ra, err := ToRoaring(a)
		require.NoError(t, err)
		rb, err := ToRoaring(b)
		require.NoError(t, err)

		assert.True(t, a.Union(b).Equal(FromRoaring(roaring.Or(ra, rb))))
		assert.True(t, a.Intersection(b).Equal(FromRoaring(roaring.And(ra, rb))))
		assert.True(t, a.Difference(b).Equal(FromRoaring(roaring.AndNot(ra, rb))))
		assert.True(t, a.SymmetricDifference(b).Equal(FromRoaring(roaring.Xor(ra, rb))))

		assert.Equal(t, int(ra.OrCardinality(rb)), a.UnionCount(b))
		assert.Equal(t, int(ra.AndCardinality(rb)), a.IntersectionCount(b))
	}
}

func TestAlgebra_MatchesBitSet(t *testing.T) {
	rng := testutil.NewRNG(11)

	for i := 0; i < 20; i++ {
		a := bitvec.Of(rng.Values(100, 3000)...)
		b := bitvec.Of(rng.Values(300, 1000)...)

		ba, bb := ToBitSet(a), ToBitSet(b)

		assert.Equal(t, int(ba.UnionCardinality(bb)), a.UnionCount(b))
		assert.Equal(t, int(ba.IntersectionCardinality(bb)), a.IntersectionCount(b))
		assert.Equal(t, int(ba.DifferenceCardinality(bb)), a.DifferenceCount(b))
		assert.Equal(t, int(ba.SymmetricDifferenceCardinality(bb)), a.SymmetricDifferenceCount(b))
	}
}
