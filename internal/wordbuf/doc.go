// Package wordbuf provides the growable word buffer that backs a bit-vector.
//
// A Buffer tracks two sizes:
//   - Len: words logically in use (bits beyond Len*64 are absent)
//   - Cap: words physically allocated
//
// Growth reallocates to twice the requested word count, never twice the old
// capacity, so a large jump overshoots proportionally to the jump itself.
// Capacity never shrinks except through Reset(false).
package wordbuf
