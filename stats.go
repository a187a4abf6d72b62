package bitvec

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/bitvec/internal/words"
)

// Stats is a point-in-time summary of a Bitset's content and footprint.
type Stats struct {
	Count       int
	WordCount   int
	Capacity    int
	MemoryUsage int
	// Kernel names the word-kernel loop variant in use ("generic" or "unrolled").
	Kernel string
}

// Stats returns a summary of b.
func (b *Bitset) Stats() Stats {
	return Stats{
		Count:       b.Count(),
		WordCount:   b.WordCount(),
		Capacity:    b.Capacity(),
		MemoryUsage: b.MemoryUsage(),
		Kernel:      words.Active().String(),
	}
}

// Density returns the fraction of in-use bits that are set (0.0 to 1.0).
func (s Stats) Density() float64 {
	if s.WordCount == 0 {
		return 0
	}
	return float64(s.Count) / float64(s.WordCount*wordBits)
}

func (s Stats) String() string {
	return fmt.Sprintf("count=%d words=%d capacity=%d memory=%s density=%.4f kernel=%s",
		s.Count, s.WordCount, s.Capacity, humanize.IBytes(uint64(s.MemoryUsage)), s.Density(), s.Kernel)
}
