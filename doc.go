// Package bitvec provides a dynamic bit-vector set of non-negative integers.
//
// A Bitset stores member v as bit v%64 of 64-bit word v/64. The word buffer
// grows on demand, so membership tests and single-member updates are O(1)
// amortized, and bulk set algebra runs a word at a time.
//
// # Quick Start
//
//	b := bitvec.Of(1, 3, 5, 1000)
//	b.Contains(3)          // true
//	b.Count()              // 4
//	last, _ := b.Last()    // 1000
//
//	if err := b.AddRange(10, 20); err != nil {
//	    // errors.Is(err, bitvec.ErrInvalidRange)
//	}
//
// # Set Algebra
//
// Every operator comes in three forms:
//
//	a.InPlaceUnion(b)      // mutates a
//	a.Union(b)             // returns a new Bitset
//	a.UnionCount(b)        // cardinality only, no allocation
//
// The same holds for Intersection, Difference and SymmetricDifference.
// For all inputs, a.Union(b).Count() == a.UnionCount(b).
//
// # Iteration
//
//	for v := range b.All() {
//	    fmt.Println(v)
//	}
//
//	it := b.Iterator()
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    fmt.Println(v)
//	}
//
// # Binary Encoding
//
// Bytes produces the shortest little-endian byte sequence that represents the
// set; FromBytes reverses it. The empty set encodes to zero bytes.
//
//	data := b.Bytes()
//	c := bitvec.FromBytes(data)
//	c.Equal(b) // true
//
// # Equality
//
// Equal compares members, not buffer sizes: trailing all-zero words are
// ignored. Hash follows the same rule, so equal sets hash equally.
//
// # Concurrency
//
// A Bitset is not safe for concurrent mutation. Callers sharing one across
// goroutines must synchronize externally or share Clone snapshots.
package bitvec
