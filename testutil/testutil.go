package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Values returns n pseudo-random members in [0, limit). Duplicates are
// possible and the order is random.
func (r *RNG) Values(n int, limit uint) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint, n)
	for i := range out {
		out[i] = uint(r.rand.Int63n(int64(limit)))
	}
	return out
}

// Run returns a contiguous ascending run of n members starting at a random
// offset in [0, limit).
func (r *RNG) Run(n int, limit uint) []uint {
	r.mu.Lock()
	start := uint(r.rand.Int63n(int64(limit)))
	r.mu.Unlock()

	out := make([]uint, n)
	for i := range out {
		out[i] = start + uint(i)
	}
	return out
}

// Words returns n pseudo-random 64-bit words.
func (r *RNG) Words(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// RefSet is a map-backed set used as a reference model in tests.
type RefSet map[uint]struct{}

// NewRefSet creates a RefSet holding vals.
func NewRefSet(vals ...uint) RefSet {
	s := make(RefSet, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in s.
func (s RefSet) Contains(v uint) bool {
	_, ok := s[v]
	return ok
}

// Union returns s ∪ o.
func (s RefSet) Union(o RefSet) RefSet {
	out := make(RefSet, len(s)+len(o))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range o {
		out[v] = struct{}{}
	}
	return out
}

// Intersection returns s ∩ o.
func (s RefSet) Intersection(o RefSet) RefSet {
	out := make(RefSet)
	for v := range s {
		if o.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Difference returns s \ o.
func (s RefSet) Difference(o RefSet) RefSet {
	out := make(RefSet)
	for v := range s {
		if !o.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns s △ o.
func (s RefSet) SymmetricDifference(o RefSet) RefSet {
	return s.Difference(o).Union(o.Difference(s))
}

// Sorted returns the members in ascending order.
func (s RefSet) Sorted() []uint {
	out := make([]uint, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
