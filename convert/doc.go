// Package convert moves sets between bitvec and other bitmap libraries.
//
// bits-and-blooms/bitset and kelindar/bitmap share the Bitset word layout
// (member v in bit v%64 of word v/64), so those conversions are word copies.
// Roaring bitmaps are compressed containers and are converted member by
// member; the 32-bit variant rejects members above math.MaxUint32.
package convert
