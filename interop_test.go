// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	xfixed "golang.org/x/image/math/fixed"
)

func TestToDecimal(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.5", ToDecimal(I24F8(0x180)).String())
	a.Equal("-1.5", ToDecimal(I16F16(-0x18000)).String())
	a.Equal("0.00000000023283064365386962890625", ToDecimal(I32F32(1)).String())
	a.Equal("-1", ToDecimal(MinI1F15).String())
	a.Equal("0", ToDecimal(I4F4(0)).String())
	a.Equal("549755813887.99999904632568359375", ToDecimal(MaxI40F20).String())
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		x   I24F8
		err bool
	}{
		{"1.5", 0x180, false},
		{"-1.5", -0x180, false},
		{"0.003", 1, false},
		{"-0.003", -1, false},
		{"0.001", 0, false},
		{"2047", 0x7ff00, false},
		{"8388607.99609375", MaxI24F8, false},
		{"-8388608", MinI24F8, false},
		{"8388608", 0, true},
		{"-8388608.1", 0, true},
		{"1e100", 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := decimal.NewFromString(test.s)
			if !a.NoError(err) {
				return
			}
			x, err := FromDecimal[I24F8](d)
			if test.err {
				a.Error(err)
				a.True(Error.Has(err))
				return
			}
			a.NoError(err)
			a.Equal(test.x, x)
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, x := range []I32F32{0, 1, -1, MaxI32F32, MinI32F32, 3 << 31, -3 << 31, 0x123456789abc} {
		y, err := FromDecimal[I32F32](ToDecimal(x))
		a.NoError(err)
		a.Equal(x, y)
	}
}

func TestFloatGeneric(t *testing.T) {
	a := assert.New(t)
	x, err := FromFloat[I16F16](float32(1.5))
	a.NoError(err)
	a.Equal(I16F16(0x18000), x)
	a.Equal(1.5, ToFloat[float64](x))
	a.Equal(float32(1.5), ToFloat[float32](x))

	y, err := FromFloat[I32F32](-0.25)
	a.NoError(err)
	a.Equal(I32F32(-1<<30), y)

	_, err = FromFloat[I4F4](8.0)
	a.True(Error.Has(err))
}

func TestImageFixed(t *testing.T) {
	a := assert.New(t)
	a.Equal(I24F8(0x180), FromInt26_6[I24F8](xfixed.Int26_6(96)))
	a.Equal(xfixed.Int26_6(96), ToInt26_6(I24F8(0x180)))
	a.Equal(xfixed.I(2), ToInt26_6(FromInt[I32F32](2)))
	a.Equal(I16F16(0x18000), FromInt52_12[I16F16](xfixed.Int52_12(0x1800)))
	a.Equal(xfixed.Int52_12(0x1800), ToInt52_12(I16F16(0x18000)))

	// x/image arithmetic agrees with ours.
	p, q := xfixed.Int26_6(128), xfixed.Int26_6(-300)
	a.Equal(p.Mul(q), ToInt26_6(I26F6(p).Mul(I26F6(q))))
	a.Equal(p.Floor(), int(I26F6(p).Floor().Int()))
	a.Equal(q.Ceil(), int(I26F6(q).Ceil().Int()))
}
