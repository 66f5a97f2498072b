// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	xfixed "golang.org/x/image/math/fixed"
)

var big5 = big.NewInt(5)

// toDecimal returns raw/2^d as an exact decimal: raw*5^d/10^d.
func toDecimal(raw int64, d int) decimal.Decimal {
	if d == 0 {
		return decimal.New(raw, 0)
	}
	m := new(big.Int).Exp(big5, big.NewInt(int64(d)), nil)
	m.Mul(m, big.NewInt(raw))
	return decimal.NewFromBigInt(m, -int32(d))
}

// ToDecimal returns the exact decimal value of x.
func ToDecimal[T Number[T]](x T) decimal.Decimal {
	return toDecimal(x.Raw(), x.Layout().Decimal())
}

// FromDecimal returns the nearest T value for d.
// Returns an error, if d is out of range of T.
func FromDecimal[T Number[T]](d decimal.Decimal) (T, error) {
	var t T
	f := t.Layout()
	scaled := d.Mul(decimal.New(f.Factor(), 0)).Round(0)
	if scaled.LessThan(decimal.New(f.MinRaw(), 0)) || scaled.GreaterThan(decimal.New(f.MaxRaw(), 0)) {
		return t, errRange
	}
	return t.WithRaw(scaled.IntPart()), nil
}

// FromFloat returns the nearest T value for f.
// Returns an error for infinities, not-a-numbers and values out of range.
func FromFloat[T Number[T], F constraints.Float](f F) (T, error) {
	var t T
	raw, err := rawFromFloat64(float64(f), t.Layout())
	if err != nil {
		return t, err
	}
	return t.WithRaw(raw), nil
}

// ToFloat returns x as a floating-point number.
// The result is exact, if F has enough mantissa bits for x.
func ToFloat[F constraints.Float, T Number[T]](x T) F {
	return F(x.Raw()) / F(x.Layout().Factor())
}

// FromInt26_6 converts a 26.6 value from golang.org/x/image/math/fixed to T.
func FromInt26_6[T Number[T]](x xfixed.Int26_6) T {
	return Convert[T](I26F6(x))
}

// ToInt26_6 converts x to a 26.6 value from golang.org/x/image/math/fixed.
func ToInt26_6[T Number[T]](x T) xfixed.Int26_6 {
	return xfixed.Int26_6(Convert[I26F6](x))
}

// FromInt52_12 converts a 52.12 value from golang.org/x/image/math/fixed to T.
func FromInt52_12[T Number[T]](x xfixed.Int52_12) T {
	return Convert[T](I52F12(x))
}

// ToInt52_12 converts x to a 52.12 value from golang.org/x/image/math/fixed.
func ToInt52_12[T Number[T]](x T) xfixed.Int52_12 {
	return xfixed.Int52_12(Convert[I52F12](x))
}
