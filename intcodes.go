package freqidx

import "math/bits"

// CeilLog2 returns the smallest w such that 2^w >= u.
//
//	CeilLog2(0) == 0
//	CeilLog2(1) == 0
//	CeilLog2(2) == 1
//	CeilLog2(3) == 2
func CeilLog2(u uint64) uint {
	if u <= 1 {
		return 0
	}
	return uint(bits.Len64(u - 1))
}

// floorLog2 returns the largest w such that 2^w <= u, for u >= 1.
func floorLog2(u uint64) uint {
	return uint(bits.Len64(u)) - 1
}

// WriteGammaNonzero appends the gamma-nonzero code for x (x >= 1): a unary
// code for floor_log2(x) followed by the low floor_log2(x) bits of x. This is
// the classic gamma code shifted by one, so it never has to represent zero.
func WriteGammaNonzero(out *BitVectorBuilder, x uint64) {
	if x == 0 {
		panic("freqidx: gamma_nonzero of 0")
	}
	l := floorLog2(x)
	out.AppendUnary(uint64(l))
	if l > 0 {
		out.AppendBits(x, l)
	}
}

// ReadGammaNonzero decodes a value previously written by WriteGammaNonzero.
func ReadGammaNonzero(in *BitReader) uint64 {
	l := in.ReadUnary()
	if l == 0 {
		return 1
	}
	low := in.Take(uint(l))
	return (uint64(1) << l) | low
}
