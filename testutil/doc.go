// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG and generators for member lists
// with controlled density, plus a map-backed reference set used to check
// bit-vector results against a trivially correct model.
//
// # Random Members
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Values(1000, 1<<16)     // 1000 members in [0, 65536)
//	run := rng.Run(100, 1<<16)          // a contiguous run of 100 members
//
// # Reference Model
//
//	ref := testutil.NewRefSet(vals...)
//	ref.Union(testutil.NewRefSet(other...)).Sorted()
package testutil
