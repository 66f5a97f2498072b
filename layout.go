// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"strconv"

	"github.com/avdva/qnum/internal/layout"
	"github.com/avdva/qnum/width"
)

// Layout describes a fixed-point format: the number of integral
// and decimal bits. The zero Layout describes no format and has
// no storage; use NewLayout or the Layout method of a fixed-point type.
type Layout struct {
	integral, decimal uint8
}

// NewLayout returns a format with given integral and decimal bits.
// The integral part holds the sign, so it needs at least one bit.
// Returns an error, if the format does not fit a native integer.
func NewLayout(integral, decimal int) (Layout, error) {
	if _, err := layout.Check(integral, decimal); err != nil {
		return Layout{}, Error.Wrap(err)
	}
	return Layout{integral: uint8(integral), decimal: uint8(decimal)}, nil
}

// MustLayout is like NewLayout, but panics on error.
func MustLayout(integral, decimal int) Layout {
	f, err := NewLayout(integral, decimal)
	if err != nil {
		panic(err)
	}
	return f
}

// Integral returns the number of integral bits.
func (f Layout) Integral() int {
	return int(f.integral)
}

// Decimal returns the number of decimal bits.
func (f Layout) Decimal() int {
	return int(f.decimal)
}

// Bits returns the total number of bits.
func (f Layout) Bits() int {
	return f.Integral() + f.Decimal()
}

// Factor returns the scale, 2^Decimal().
func (f Layout) Factor() int64 {
	return 1 << f.decimal
}

// Mask returns the mask of the decimal bits.
func (f Layout) Mask() int64 {
	return f.Factor() - 1
}

// Storage returns the storage width for the format,
// or the zero Record for the zero Layout.
func (f Layout) Storage() width.Record {
	if f.Bits() == 0 {
		return width.Record{}
	}
	return width.MustSigned(f.Bits())
}

// MinRaw returns the smallest scaled integer of the format.
func (f Layout) MinRaw() int64 {
	return -1 << (f.Bits() - 1)
}

// MaxRaw returns the largest scaled integer of the format.
func (f Layout) MaxRaw() int64 {
	return 1<<(f.Bits()-1) - 1
}

// String returns the name of the format, like "I24F8".
func (f Layout) String() string {
	return "I" + strconv.Itoa(f.Integral()) + "F" + strconv.Itoa(f.Decimal())
}

// span is the number of bits a raw value of the format may occupy.
// It is the storage width, which is never less than Bits().
func (f Layout) span() int {
	return f.Storage().Bits
}
