// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"
	"math/bits"

	"github.com/avdva/qnum/internal/mathutil"
	"github.com/avdva/qnum/width"
)

// native returns true, if an intermediate result of 'need' bits
// fits a native integer. Otherwise it is computed in 128 bits.
func native(need int) bool {
	r, err := width.Signed(need)
	return err == nil && r.Native()
}

// mulQuo returns a*b/c computed in a domain of at least 'need' bits.
// The division truncates toward zero. If c == 0, mulQuo panics.
func mulQuo(need int, a, b, c int64) int64 {
	if c == 0 {
		panic(ErrDivisionByZero)
	}
	if native(need) {
		return a * b / c
	}
	return mathutil.MulQuo64(a, b, c)
}

// rescale converts a raw value of format 'from' into a raw value of format 'to'.
// It multiplies by the destination factor first and then divides
// by the source factor, which keeps all the bits the destination can hold.
func rescale(v int64, from, to Layout) int64 {
	if from.decimal == to.decimal {
		return v
	}
	need := max(from.span(), to.span()) + from.Decimal() + to.Decimal()
	return mulQuo(need, v, to.Factor(), from.Factor())
}

// cmpScaled compares a*bf and b*af computed in a domain of at least 'need' bits.
func cmpScaled(need int, a, bf, b, af int64) int {
	if native(need) {
		return mathutil.Int64Cmp(a*bf, b*af)
	}
	return mathutil.Mul64(a, bf).Cmp(mathutil.Mul64(b, af))
}

// newRaw returns r*factor/2^shift for the format f.
// The product is sized by the magnitude of r, not by the format.
func newRaw(r int64, shift uint, f Layout) int64 {
	need := bits.Len64(mathutil.AbsUint64(r)) + 1 + f.Decimal()
	if native(need) {
		return mathutil.QuoPow2(r*f.Factor(), shift)
	}
	return mathutil.Int128From64(r).Lsh(uint(f.decimal)).QuoPow2(shift).Int64()
}

// intQuo returns r*factor*factor/x for the format f, truncated toward zero.
// Like newRaw, the product is sized by the magnitude of r.
func intQuo(r int64, f Layout, x int64) int64 {
	if x == 0 {
		panic(ErrDivisionByZero)
	}
	shift := uint(2 * f.Decimal())
	if native(bits.Len64(mathutil.AbsUint64(r)) + 1 + int(shift)) {
		return (r << shift) / x
	}
	return mathutil.Int128From64(r).Lsh(shift).Quo64(x).Int64()
}

// rawFromFloat64 returns the nearest raw value of f for the format.
func rawFromFloat64(v float64, f Layout) (int64, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, Error.New("bad float number")
	}
	scaled := math.Round(math.Ldexp(v, f.Decimal()))
	if limit := math.Ldexp(1, f.Bits()-1); scaled < -limit || scaled >= limit {
		return 0, errRange
	}
	return int64(scaled), nil
}
