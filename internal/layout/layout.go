// Package layout holds the rules every fixed-point format must follow.
// Both the generator and the runtime descriptor check formats here.
package layout

import (
	"github.com/zeebo/errs"

	"github.com/avdva/qnum/width"
)

// MaxDecimalBits keeps the factor a positive int64.
const MaxDecimalBits = 62

// Error is the class of format errors.
var Error = errs.Class("layout")

// Check validates a format with given integral and decimal bits
// and returns the storage width for it.
// The integral part holds the sign, so it needs at least one bit.
func Check(integral, decimal int) (width.Record, error) {
	if integral < 1 {
		return width.Record{}, Error.New("bad format I%dF%d: at least one integral bit is required", integral, decimal)
	}
	if decimal < 0 || decimal > MaxDecimalBits {
		return width.Record{}, Error.New("bad format I%dF%d: decimal bits must be in [0, %d]", integral, decimal, MaxDecimalBits)
	}
	r, err := width.Signed(integral + decimal)
	if err != nil || !r.Native() {
		return width.Record{}, Error.New("bad format I%dF%d: %d bits do not fit a native integer", integral, decimal, integral+decimal)
	}
	return r, nil
}
