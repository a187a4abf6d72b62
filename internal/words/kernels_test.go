package words

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestAndWords(t *testing.T) {
	tests := []struct {
		name string
		dst  []uint64
		src  []uint64
		want []uint64
	}{
		{
			name: "Empty",
			dst:  []uint64{},
			src:  []uint64{},
			want: []uint64{},
		},
		{
			name: "Single word",
			dst:  []uint64{0xFF00FF00FF00FF00},
			src:  []uint64{0x0F0F0F0F0F0F0F0F},
			want: []uint64{0x0F000F000F000F00},
		},
		{
			name: "Longer src",
			dst:  []uint64{0xFF},
			src:  []uint64{0x0F, 0xFF},
			want: []uint64{0x0F},
		},
		{
			name: "5 words (unrolled + tail)",
			dst:  []uint64{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			src:  []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
			want: []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fn := range []func(dst, src []uint64){andWordsGeneric, andWordsUnrolled, AndWords} {
				dst := make([]uint64, len(tt.dst))
				copy(dst, tt.dst)
				fn(dst, tt.src)
				for i := range dst {
					if dst[i] != tt.want[i] {
						t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestWordKernelsMatchReference(t *testing.T) {
	prev := Active()
	defer SetVariant(prev)

	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 3, 4, 7, 64, 129} {
		a := make([]uint64, n)
		b := make([]uint64, n)
		for i := range a {
			a[i] = rng.Uint64()
			b[i] = rng.Uint64()
		}

		var wantAnd, wantAndNot, wantOr, wantXor, wantPop int
		for i := range a {
			wantAnd += bits.OnesCount64(a[i] & b[i])
			wantAndNot += bits.OnesCount64(a[i] &^ b[i])
			wantOr += bits.OnesCount64(a[i] | b[i])
			wantXor += bits.OnesCount64(a[i] ^ b[i])
			wantPop += bits.OnesCount64(a[i])
		}

		for _, v := range []Variant{Generic, Unrolled} {
			if !SetVariant(v) {
				t.Fatalf("SetVariant(%s) failed", v)
			}

			if got := AndCount(a, b); got != wantAnd {
				t.Errorf("%s AndCount(n=%d) = %d, want %d", v, n, got, wantAnd)
			}
			if got := AndNotCount(a, b); got != wantAndNot {
				t.Errorf("%s AndNotCount(n=%d) = %d, want %d", v, n, got, wantAndNot)
			}
			if got := OrCount(a, b); got != wantOr {
				t.Errorf("%s OrCount(n=%d) = %d, want %d", v, n, got, wantOr)
			}
			if got := XorCount(a, b); got != wantXor {
				t.Errorf("%s XorCount(n=%d) = %d, want %d", v, n, got, wantXor)
			}
			if got := PopcountWords(a); got != wantPop {
				t.Errorf("%s PopcountWords(n=%d) = %d, want %d", v, n, got, wantPop)
			}

			dst := append([]uint64(nil), a...)
			OrWords(dst, b)
			XorWords(dst, b)
			AndNotWords(dst, b)
			// ((a | b) ^ b) &^ b == a &^ b
			for i := range dst {
				if dst[i] != a[i]&^b[i] {
					t.Fatalf("%s word %d = %#x, want %#x", v, i, dst[i], a[i]&^b[i])
				}
			}
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{Generic, Unrolled} {
		got, ok := ParseVariant(" " + v.String() + " ")
		if !ok || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, ok)
		}
	}

	for _, name := range []string{"avx2", "neon", "popcnt", "sse9"} {
		if _, ok := ParseVariant(name); ok {
			t.Errorf("ParseVariant accepted instruction-set name %q", name)
		}
	}
	if Variant(99).String() != "unknown" {
		t.Error("unexpected name for out-of-range Variant")
	}
}

func TestSetVariant(t *testing.T) {
	prev := Active()
	defer SetVariant(prev)

	for _, v := range []Variant{Generic, Unrolled} {
		if !SetVariant(v) {
			t.Fatalf("SetVariant(%s) failed", v)
		}
		if Active() != v {
			t.Errorf("Active() = %s, want %s", Active(), v)
		}
	}

	if SetVariant(Variant(99)) {
		t.Error("SetVariant accepted an unknown variant")
	}
	if Active() != Unrolled {
		t.Errorf("rejected SetVariant changed Active() to %s", Active())
	}
}

func TestDefaultVariantFollowsHardwarePopcount(t *testing.T) {
	want := Generic
	if HasHardwarePopcount() {
		want = Unrolled
	}
	if got := selectBest(); got != want {
		t.Errorf("selectBest() = %s, want %s", got, want)
	}
}
