package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		i, d int
		bits int
		err  bool
	}{
		{1, 0, 8, false},
		{4, 4, 8, false},
		{8, 8, 16, false},
		{17, 16, 64, false},
		{32, 32, 64, false},
		{2, MaxDecimalBits, 64, false},
		{0, 8, 0, true},
		{-1, 8, 0, true},
		{8, -1, 0, true},
		{1, MaxDecimalBits + 1, 0, true},
		{33, 32, 0, true},
		{60, 8, 0, true},
		{200, 0, 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := Check(test.i, test.d)
			if test.err {
				a.Error(err)
				a.True(Error.Has(err))
				return
			}
			a.NoError(err)
			a.Equal(test.bits, r.Bits)
			a.True(r.Signed)
			a.Equal(test.i+test.d, r.Requested)
		})
	}
}
