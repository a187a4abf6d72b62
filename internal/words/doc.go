// Package words provides the word-array kernels used by the bit-vector set
// algebra: in-place AND/OR/XOR/ANDNOT over []uint64 and popcount-based counts
// that never write to either operand.
//
// Kernels are dispatched through function pointers chosen once at init.
// Both variants are portable Go: "generic" walks one word per iteration and
// "unrolled" four. Unrolled is the default on CPUs with a popcount
// instruction. Set BITVEC_KERNEL=generic or BITVEC_KERNEL=unrolled to force
// a variant.
package words
