// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"math"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestI24F8Mul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y I24F8
		res  I24F8
	}{
		{0x0007ff00, 0x0007ff00, 0x7ff * 0x7ff * 0x100},
		{0x8000, 0x8000, 0x80 * 0x80 * 0x100},
		{0x10000, 0x10000, 0x100 * 0x100 * 0x100},
		{0x180, 0x140, 0x1e0},
		{-0x180, 0x140, -0x1e0},
		{-0x180, -0x180, 0x240},
		{1, 1, 0},
		{-1, 1, 0},
		{0, MaxI24F8, 0},
		// 65536*65536 does not fit 24 integral bits and wraps.
		{0x1000000, 0x1000000, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.x.Mul(test.y))
			a.Equal(test.res, test.y.Mul(test.x))
		})
	}
	a.Equal(int64(0x7ff), I24F8(0x0007ff00).Int())
	a.Equal(int64(0x7ff*0x7ff), I24F8(0x0007ff00).Mul(0x0007ff00).Int())
}

func TestI24F8Div(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y I24F8
		res  I24F8
	}{
		{0x300, 0x200, 0x180},
		{-0x300, 0x200, -0x180},
		{0x300, -0x200, -0x180},
		{0x180, 0x140, 0x133},
		{1, 0x300, 0},
		{-1, 0x300, 0},
		{MaxI24F8, 0x100, MaxI24F8},
		{MinI24F8, 0x100, MinI24F8},
		{0x100, 3, 0x5555},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.x.Div(test.y))
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	a := assert.New(t)
	a.PanicsWithValue(ErrDivisionByZero, func() { I24F8(0x100).Div(0) })
	a.PanicsWithValue(ErrDivisionByZero, func() { I24F8(0x100).DivInt(0) })
	a.PanicsWithValue(ErrDivisionByZero, func() { I24F8(0).IntDiv(1) })
	a.PanicsWithValue(ErrDivisionByZero, func() { I32F32(1).Div(0) })
	a.PanicsWithValue(ErrDivisionByZero, func() { I32F32(0).IntDiv(1) })
	a.PanicsWithValue(ErrDivisionByZero, func() { I4F4(0x10).Div(0) })
	a.PanicsWithValue(ErrDivisionByZero, func() { Div(I24F8(0x100), I16F16(0)) })
	a.PanicsWithValue(ErrDivisionByZero, func() {
		x := I32F32(1)
		DivAssign(&x, I4F4(0))
	})
}

func TestI24F8Scalar(t *testing.T) {
	a := assert.New(t)
	x := I24F8(0x180)
	a.Equal(I24F8(-0x80), x.AddInt(-2))
	a.Equal(I24F8(0x380), x.AddInt(2))
	a.Equal(I24F8(-0x80), x.SubInt(2))
	a.Equal(I24F8(0x480), x.MulInt(3))
	a.Equal(I24F8(-0x480), x.MulInt(-3))
	a.Equal(I24F8(0x180), I24F8(0x480).DivInt(3))
	a.Equal(I24F8(-0x180), I24F8(0x480).DivInt(-3))
	a.Equal(I24F8(0x80), x.IntSub(2))
	a.Equal(I24F8(-0x180), x.IntSub(0))
	a.Equal(I24F8(0x180), I24F8(0x200).IntDiv(3))
	a.Equal(I24F8(0x100), x.IntDiv(0).AddInt(1))
	a.Equal(I24F8(0x155), x.IntDiv(2))
}

func TestIntDivWide(t *testing.T) {
	a := assert.New(t)
	// r*factor does not fit int64, but r/x does fit the format.
	a.Equal(NewI32F32(1<<30, 0), NewI32F32(1<<10, 0).IntDiv(1<<40))
	a.Equal(NewI32F32(-1<<30, 0), NewI32F32(1<<10, 0).IntDiv(-1<<40))
	a.Equal(NewI32F32(-1<<30, 0), NewI32F32(-1<<10, 0).IntDiv(1<<40))
	a.Equal(NewI32F32(3<<21, 0), NewI32F32(1<<11, 0).IntDiv(3<<32))
	a.Equal(NewI40F20(1<<30, 0), NewI40F20(1<<20, 0).IntDiv(1<<50))
	a.Equal(NewI40F20(-1<<30, 0), NewI40F20(1<<20, 0).IntDiv(-1<<50))
	a.Equal(NewI52F12(1<<20, 0), NewI52F12(1<<40, 0).IntDiv(1<<60))
	a.Equal(NewI52F12(-1<<20, 0), NewI52F12(-1<<40, 0).IntDiv(1<<60))
	a.Equal(I52F12(1<<35-1), NewI52F12(1<<40, 0).IntDiv(math.MaxInt64))
	a.Equal(NewI24F8(1<<20, 0), NewI24F8(1<<20, 0).IntDiv(1<<40))
	a.Equal(NewI24F8(1<<20, 0), NewI24F8(-1<<20, 0).IntDiv(-1<<40))
}

func TestI24F8Rounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x                  I24F8
		floor, ceil, round I24F8
	}{
		{0x199, 0x100, 0x200, 0x200},
		{0x201, 0x200, 0x300, 0x200},
		{0x17f, 0x100, 0x200, 0x100},
		{0x181, 0x100, 0x200, 0x200},
		{0x180, 0x100, 0x200, 0x200},
		{0x200, 0x200, 0x200, 0x200},
		{0, 0, 0, 0},
		{1, 0, 0x100, 0},
		{-1, -0x100, 0, 0},
		{-0x180, -0x200, -0x100, -0x100},
		{-0x17f, -0x200, -0x100, -0x100},
		{-0x181, -0x200, -0x100, -0x200},
		{-0x200, -0x200, -0x200, -0x200},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.floor, test.x.Floor())
			a.Equal(test.ceil, test.x.Ceil())
			a.Equal(test.round, test.x.Round())
		})
	}
}

func TestI24F8Compare(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, I24F8(0x180).CmpInt(1))
	a.Equal(-1, I24F8(0x180).CmpInt(2))
	a.Equal(0, I24F8(-0x200).CmpInt(-2))
	a.Equal(1, I24F8(-0x1ff).CmpInt(-2))
	a.True(I24F8(0x200).EqInt(2))
	a.False(I24F8(0x1ff).EqInt(2))
	a.False(I24F8(0x201).EqInt(2))
	// r<<8 overflows int64, which must not make these equal.
	a.False(I24F8(0).EqInt(1 << 56))
	a.Equal(1, I24F8(0).CmpInt(math.MinInt64))
	a.Equal(-1, MaxI24F8.CmpInt(math.MaxInt64))

	a.Equal(-1, I24F8(1).Cmp(2))
	a.Equal(0, I24F8(2).Cmp(2))
	a.Equal(1, I24F8(3).Cmp(2))
	a.True(I24F8(3).Eq(3))
	a.False(I24F8(3).Eq(-3))

	a.Equal(-1, I32F32(0).CmpInt(1<<40))
	a.True(NewI32F32(-7, 0).EqInt(-7))
}

func TestI24F8Sign(t *testing.T) {
	a := assert.New(t)
	a.Equal(-1, I24F8(-5).Sign())
	a.Equal(0, I24F8(0).Sign())
	a.Equal(1, I24F8(5).Sign())
	a.Equal(I24F8(5), I24F8(-5).Abs())
	a.Equal(I24F8(5), I24F8(5).Abs())
	a.Equal(I24F8(-5), I24F8(5).Neg())
	a.Equal(MinI24F8, MinI24F8.Neg())
	a.Equal(MinI24F8, MinI24F8.Abs())
	a.Equal(MinI24F8, MaxI24F8.Add(1))
	a.Equal(MaxI24F8, MinI24F8.Sub(1))
}

func TestI24F8Convert(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   I24F8
		i   int64
		f   float64
		str string
	}{
		{0x180, 1, 1.5, "1.5"},
		{-0x180, -1, -1.5, "-1.5"},
		{1, 0, 0.00390625, "0.00390625"},
		{-1, 0, -0.00390625, "-0.00390625"},
		{0, 0, 0, "0"},
		{0x0007ff00, 0x7ff, 2047, "2047"},
		{MaxI24F8, 1<<23 - 1, 8388607.99609375, "8388607.99609375"},
		{MinI24F8, -1 << 23, -8388608, "-8388608"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.i, test.x.Int())
			a.Equal(test.f, test.x.Float64())
			a.Equal(float32(test.f), test.x.Float32())
			a.Equal(test.str, test.x.String())
			d, err := decimal.NewFromString(test.str)
			if a.NoError(err) {
				a.True(d.Equal(test.x.Decimal()))
			}
		})
	}
}

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		x   I24F8
		err bool
	}{
		{1.5, 0x180, false},
		{-1.5, -0x180, false},
		{0.00390625, 1, false},
		{0.001953125, 1, false},
		{-0.001953125, -1, false},
		{0.0019, 0, false},
		{8388607.99609375, MaxI24F8, false},
		{-8388608, MinI24F8, false},
		{8388608, 0, true},
		{-8388609, 0, true},
		{math.Inf(1), 0, true},
		{math.Inf(-1), 0, true},
		{math.NaN(), 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, err := I24F8FromFloat64(test.f)
			if test.err {
				a.Error(err)
				a.True(Error.Has(err))
				a.Panics(func() { MustI24F8FromFloat64(test.f) })
				return
			}
			a.NoError(err)
			a.Equal(test.x, x)
			a.Equal(test.x, MustI24F8FromFloat64(test.f))
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{0, 1, -1, 0.1, -0.1, 3.14159, -2.71828, 1234.5678, -4321.8765, 12345.678} {
		x16, err := I16F16FromFloat64(f)
		if a.NoError(err) {
			a.InDelta(f, x16.Float64(), 1.0/(1<<16))
		}
		x24, err := I24F8FromFloat64(f)
		if a.NoError(err) {
			a.InDelta(f, x24.Float64(), 1.0/(1<<8))
		}
		x32, err := I32F32FromFloat64(f)
		if a.NoError(err) {
			a.InDelta(f, x32.Float64(), 1.0/(1<<32))
		}
	}
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	a.Equal(I24F8(0x180), NewI24F8(3, 1))
	a.Equal(I24F8(-0x180), NewI24F8(-3, 1))
	a.Equal(I24F8(0x300), NewI24F8(3, 0))
	a.Equal(I24F8(0), NewI24F8(1, 9))
	a.Equal(I24F8(0), NewI24F8(-1, 9))
	a.Equal(I24F8(1), NewI24F8(1, 8))
	a.Equal(I32F32(1<<52), NewI32F32(1<<40, 20))
	a.Equal(I32F32(-1<<52), NewI32F32(-1<<40, 20))
	a.Equal(I32F32(1), NewI32F32(1<<62, 94))
	a.Equal(I32F32(0), NewI32F32(1, 200))
	a.Equal(I4F4(0x18), NewI4F4(3, 1))
}

func TestI32F32(t *testing.T) {
	a := assert.New(t)
	three, half := NewI32F32(3, 0), NewI32F32(1, 1)
	a.Equal(NewI32F32(3, 1), three.Mul(half))
	a.Equal(NewI32F32(6, 0), three.Div(half))
	// the products below need more than 64 bits.
	a.Equal(NewI32F32(1<<30, 0), NewI32F32(1<<20, 0).Mul(NewI32F32(1<<10, 0)))
	a.Equal(NewI32F32(-1<<30, 0), NewI32F32(-1<<20, 0).Mul(NewI32F32(1<<10, 0)))
	a.Equal(I32F32(1431655765), NewI32F32(1, 0).Div(three))
	a.Equal(I32F32(-1431655765), NewI32F32(-1, 0).Div(three))
	a.Equal(NewI32F32(1<<20, 0), NewI32F32(1<<30, 0).Div(NewI32F32(1<<10, 0)))
	a.Equal(NewI32F32(2, 0), half.IntDiv(1))
	a.Equal(I32F32(1431655765), three.IntDiv(1))
	a.Equal("0.00000000023283064365386962890625", I32F32(1).String())
	a.Equal(NewI32F32(1, 0), NewI32F32(3, 1).Floor())
	a.Equal(NewI32F32(2, 0), NewI32F32(3, 1).Round())
	a.Equal(NewI32F32(-1, 0), NewI32F32(-3, 1).Ceil())
}

func TestI40F20(t *testing.T) {
	a := assert.New(t)
	x := NewI40F20(1<<30, 0)
	a.Equal(NewI40F20(1<<30, 1), x.Mul(NewI40F20(1, 1)))
	a.Equal(NewI40F20(1<<29, 0), x.Div(NewI40F20(2, 0)))
	a.Equal(NewI40F20(1, 10), NewI40F20(1, 0).Div(NewI40F20(1<<10, 0)))
	a.Equal(int64(1<<30), x.Int())
	a.Equal("1073741824", x.String())
}

func TestSmallFormats(t *testing.T) {
	a := assert.New(t)
	a.Equal(I4F4(0x24), I4F4(0x18).Mul(0x18))
	a.Equal(I4F4(0x18), I4F4(0x24).Div(0x18))
	a.Equal(MinI4F4, MaxI4F4.AddInt(0).Add(1))
	a.Equal("-8", MinI4F4.String())
	a.Equal("7.9375", MaxI4F4.String())
	a.Equal(I8F8(0x40), I8F8(0x80).Mul(0x80))
	a.Equal(I1F15(0x2000), I1F15(0x4000).Mul(0x4000))
	a.Equal("-1", MinI1F15.String())
	a.Equal(I1F15(0x4000), I1F15(0x2000).Div(0x4000))
	a.Equal(I12F12(0x3000), I12F12(0x1800).MulInt(2))
	a.Equal(I26F6(0x60), I26F6(0x40).Add(0x20))
	a.Equal(I52F12(0x1800), NewI52F12(3, 1))
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(123456.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulI32F32(b *testing.B) {
	f0 := MustI32F32FromFloat64(123456.9)
	f1 := MustI32F32FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulI16F16(b *testing.B) {
	f0 := MustI16F16FromFloat64(123.9)
	f1 := MustI16F16FromFloat64(12.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDivI32F32(b *testing.B) {
	f0 := MustI32F32FromFloat64(123456.9)
	f1 := MustI32F32FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkDivOtherFixed(b *testing.B) {
	f0 := of.NewF(123456.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}
