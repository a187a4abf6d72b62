package words

import (
	"os"
	"strings"
)

// Variant names the loop implementation behind the kernels.
type Variant uint8

const (
	// Generic is the plain one-word-per-iteration loop.
	Generic Variant = iota
	// Unrolled processes four words per iteration.
	Unrolled
)

// String returns the string representation of a Variant.
func (v Variant) String() string {
	switch v {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseVariant parses a string into a Variant value.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// OverrideEnv is the environment variable consulted at init.
const OverrideEnv = "BITVEC_KERNEL"

var (
	active      Variant
	hasOverride bool

	// Set by platform-specific init: the CPU counts bits in one
	// instruction (x86-64 POPCNT, ARM64 ASIMD CNT), which is what
	// bits.OnesCount64 lowers to there.
	hasHardwarePopcount bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	active = selectBest()

	if override := os.Getenv(OverrideEnv); override != "" {
		if v, ok := ParseVariant(override); ok {
			hasOverride = true
			active = v
		}
	}

	apply(active)
}

func apply(v Variant) {
	if v == Unrolled {
		useUnrolled()
		return
	}
	useGeneric()
}

// selectBest picks the unrolled loops only when popcount is a single
// instruction.
func selectBest() Variant {
	if hasHardwarePopcount {
		return Unrolled
	}
	return Generic
}

// Active returns the variant currently behind the kernels.
func Active() Variant {
	return active
}

// HasHardwarePopcount reports whether the CPU has a popcount instruction.
func HasHardwarePopcount() bool {
	return hasHardwarePopcount
}

// IsOverridden returns true if BITVEC_KERNEL selected the active variant.
func IsOverridden() bool {
	return hasOverride
}

// SetVariant switches the kernels to v and reports whether v is known.
// Not safe to call concurrently with kernels.
func SetVariant(v Variant) bool {
	if v != Generic && v != Unrolled {
		return false
	}
	active = v
	apply(v)
	return true
}
