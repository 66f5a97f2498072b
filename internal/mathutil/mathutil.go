// Package mathutil implements the 128-bit domain used for intermediate
// results, which do not fit a native integer.
package mathutil

import (
	"math/bits"
)

// Int128 is a two's complement 128-bit integer.
// It wraps on overflow the same way int64 does.
type Int128 struct {
	hi int64
	lo uint64
}

// Int128From64 returns x as Int128.
func Int128From64(x int64) Int128 {
	return Int128{hi: x >> 63, lo: uint64(x)}
}

// Int128FromRaw returns an Int128 for given high and low halves.
func Int128FromRaw(hi int64, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Mul64 returns the full product a*b.
func Mul64(a, b int64) Int128 {
	hi, lo := bits.Mul64(AbsUint64(a), AbsUint64(b))
	return fromMag(hi, lo, (a < 0) != (b < 0))
}

// MulQuo64 returns a*b/c, computed in 128 bits and narrowed to 64 bits.
// The division truncates toward zero. If c == 0, MulQuo64 panics.
func MulQuo64(a, b, c int64) int64 {
	return Mul64(a, b).Quo64(c).Int64()
}

// Raw returns the high and low halves of x.
func (x Int128) Raw() (hi int64, lo uint64) {
	return x.hi, x.lo
}

// Add returns x+y.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	return Int128{hi: x.hi + y.hi + int64(carry), lo: lo}
}

// Sub returns x-y.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	return Int128{hi: x.hi - y.hi - int64(borrow), lo: lo}
}

// Neg returns -x.
func (x Int128) Neg() Int128 {
	lo, carry := bits.Add64(^x.lo, 1, 0)
	return Int128{hi: ^x.hi + int64(carry), lo: lo}
}

// Lsh returns x<<n.
func (x Int128) Lsh(n uint) Int128 {
	switch {
	case n >= 128:
		return Int128{}
	case n >= 64:
		return Int128{hi: int64(x.lo << (n - 64))}
	default:
		return Int128{hi: x.hi<<n | int64(x.lo>>(64-n)), lo: x.lo << n}
	}
}

// QuoPow2 returns x/2^n, truncated toward zero.
func (x Int128) QuoPow2(n uint) Int128 {
	hi, lo := x.mag()
	switch {
	case n >= 128:
		hi, lo = 0, 0
	case n >= 64:
		hi, lo = 0, hi>>(n-64)
	default:
		hi, lo = hi>>n, lo>>n|hi<<(64-n)
	}
	return fromMag(hi, lo, x.hi < 0)
}

// Quo64 returns x/d, truncated toward zero. If d == 0, Quo64 panics.
func (x Int128) Quo64(d int64) Int128 {
	hi, lo := x.mag()
	ud := AbsUint64(d)
	// two steps, so that bits.Div64 never sees a quotient overflow.
	qhi, r := hi/ud, hi%ud
	qlo, _ := bits.Div64(r, lo, ud)
	return fromMag(qhi, qlo, (x.hi < 0) != (d < 0))
}

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.hi > y.hi:
		return 1
	case x.hi < y.hi:
		return -1
	case x.lo > y.lo:
		return 1
	case x.lo < y.lo:
		return -1
	default:
		return 0
	}
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Int128) Sign() int {
	if x.hi < 0 {
		return -1
	}
	if x.hi == 0 && x.lo == 0 {
		return 0
	}
	return 1
}

// IsInt64 returns true, if x can be narrowed to int64 without loss.
func (x Int128) IsInt64() bool {
	return x.hi == int64(x.lo)>>63
}

// Int64 returns the low 64 bits of x as a signed number.
func (x Int128) Int64() int64 {
	return int64(x.lo)
}

// mag returns the magnitude of x. MinInt128 has magnitude 2^127.
func (x Int128) mag() (hi, lo uint64) {
	if x.hi < 0 {
		x = x.Neg()
	}
	return uint64(x.hi), x.lo
}

func fromMag(hi, lo uint64, neg bool) Int128 {
	x := Int128{hi: int64(hi), lo: lo}
	if neg {
		return x.Neg()
	}
	return x
}

// AbsUint64 returns the magnitude of val. It is correct for math.MinInt64.
func AbsUint64(val int64) uint64 {
	u := uint64(val)
	if val < 0 {
		return -u
	}
	return u
}

// QuoPow2 returns val/2^n, truncated toward zero.
func QuoPow2(val int64, n uint) int64 {
	if val < 0 {
		return -int64(AbsUint64(val) >> n)
	}
	return val >> n
}

// Int64Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// Int64Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Int64Cmp(a, b int64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
