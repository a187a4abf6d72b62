package bitvec

import "github.com/hupe1980/bitvec/internal/wordbuf"

type options struct {
	capacity int
}

func defaultOptions() options {
	return options{capacity: wordbuf.DefaultCapacity}
}

// Option configures Bitset construction.
type Option func(*options)

// WithCapacity preallocates room for the given number of 64-bit words.
// Values <= 0 select the default of 8 words.
//
// Preallocation only avoids reallocation; it never changes the set's content.
func WithCapacity(words int) Option {
	return func(o *options) {
		o.capacity = words
	}
}

// WithCapacityFor preallocates enough words to hold members up to maxValue
// without reallocating.
func WithCapacityFor(maxValue uint) Option {
	return func(o *options) {
		o.capacity = wordIndex(maxValue) + 1
	}
}
