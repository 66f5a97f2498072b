package main

var fixedTemplate = `// Code generated by fixedgen -i {{ .Integral }} -d {{ .Decimal }}; DO NOT EDIT.

package {{ .Package }}

import (
	"unsafe"

	"github.com/avdva/qnum/internal/mathutil"
	"github.com/shopspring/decimal"
)

var layout{{ .Name }} = Layout{integral: {{ .Integral }}, decimal: {{ .Decimal }}}

// {{ .Name }} must be able to hold {{ .Bits }} bits.
var _ [unsafe.Sizeof({{ .Name }}(0))*8 - {{ .Bits }}]struct{}

// {{ .Name }} is a signed fixed-point number with {{ .Integral }} integral and {{ .Decimal }} decimal bits,
// stored in an {{ .Storage }}.
type {{ .Name }} {{ .Storage }}

const (
	// Min{{ .Name }} is the smallest {{ .Name }} value.
	Min{{ .Name }} {{ .Name }} = -1 << {{ .SignShift }}
	// Max{{ .Name }} is the largest {{ .Name }} value.
	Max{{ .Name }} {{ .Name }} = 1<<{{ .SignShift }} - 1
)

// New{{ .Name }} returns r/2^shift as {{ .Name }}.
func New{{ .Name }}(r int64, shift uint) {{ .Name }} {
	return {{ .Name }}(newRaw(r, shift, layout{{ .Name }}))
}

// {{ .Name }}FromFloat64 returns the nearest {{ .Name }} value for f.
// Returns an error for infinities, not-a-numbers and values out of range.
func {{ .Name }}FromFloat64(f float64) ({{ .Name }}, error) {
	raw, err := rawFromFloat64(f, layout{{ .Name }})
	return {{ .Name }}(raw), err
}

// Must{{ .Name }}FromFloat64 is like {{ .Name }}FromFloat64, but panics on error.
func Must{{ .Name }}FromFloat64(f float64) {{ .Name }} {
	x, err := {{ .Name }}FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return x
}

// Layout returns the format of {{ .Name }}.
func ({{ .Name }}) Layout() Layout {
	return layout{{ .Name }}
}

// Raw returns the scaled integer.
func (x {{ .Name }}) Raw() int64 {
	return int64(x)
}

// WithRaw returns raw narrowed to {{ .Name }}.
func ({{ .Name }}) WithRaw(raw int64) {{ .Name }} {
	return {{ .Name }}(raw)
}

// Neg returns -x.
func (x {{ .Name }}) Neg() {{ .Name }} {
	return -x
}

// Abs returns the absolute value of x.
func (x {{ .Name }}) Abs() {{ .Name }} {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x {{ .Name }}) Sign() int {
	return mathutil.Int64Sign(int64(x))
}

// Add returns x+y.
func (x {{ .Name }}) Add(y {{ .Name }}) {{ .Name }} {
	return x + y
}

// Sub returns x-y.
func (x {{ .Name }}) Sub(y {{ .Name }}) {{ .Name }} {
	return x - y
}

// Mul returns x*y.
func (x {{ .Name }}) Mul(y {{ .Name }}) {{ .Name }} {
{{- if .MulType }}
	return {{ .Name }}({{ .MulType }}(x) * {{ .MulType }}(y) / {{ .Factor }})
{{- else }}
	return {{ .Name }}(mathutil.MulQuo64(int64(x), int64(y), {{ .Factor }}))
{{- end }}
}

// Div returns x/y. If y == 0, Div panics.
func (x {{ .Name }}) Div(y {{ .Name }}) {{ .Name }} {
	if y == 0 {
		panic(ErrDivisionByZero)
	}
{{- if .DivType }}
	return {{ .Name }}({{ .DivType }}(x) * {{ .Factor }} / {{ .DivType }}(y))
{{- else }}
	return {{ .Name }}(mathutil.MulQuo64(int64(x), {{ .Factor }}, int64(y)))
{{- end }}
}

// AddInt returns x+r.
func (x {{ .Name }}) AddInt(r int64) {{ .Name }} {
	return {{ .Name }}(int64(x) + r*{{ .Factor }})
}

// SubInt returns x-r.
func (x {{ .Name }}) SubInt(r int64) {{ .Name }} {
	return {{ .Name }}(int64(x) - r*{{ .Factor }})
}

// MulInt returns x*r.
func (x {{ .Name }}) MulInt(r int64) {{ .Name }} {
	return {{ .Name }}(int64(x) * r)
}

// DivInt returns x/r. If r == 0, DivInt panics.
func (x {{ .Name }}) DivInt(r int64) {{ .Name }} {
	if r == 0 {
		panic(ErrDivisionByZero)
	}
	return {{ .Name }}(int64(x) / r)
}

// IntSub returns r-x.
func (x {{ .Name }}) IntSub(r int64) {{ .Name }} {
	return {{ .Name }}(r*{{ .Factor }} - int64(x))
}

// IntDiv returns r/x. If x == 0, IntDiv panics.
func (x {{ .Name }}) IntDiv(r int64) {{ .Name }} {
	if x == 0 {
		panic(ErrDivisionByZero)
	}
	return {{ .Name }}(intQuo(r, layout{{ .Name }}, int64(x)))
}

// Floor returns the largest whole value <= x.
func (x {{ .Name }}) Floor() {{ .Name }} {
{{- if .Decimal }}
	return x &^ {{ .Mask }}
{{- else }}
	return x
{{- end }}
}

// Ceil returns the smallest whole value >= x.
func (x {{ .Name }}) Ceil() {{ .Name }} {
{{- if .Decimal }}
	if x&{{ .Mask }} != 0 {
		return {{ .Name }}(int64(x&^{{ .Mask }}) + {{ .Factor }})
	}
{{- end }}
	return x
}

// Round returns the nearest whole value, rounding half up.
func (x {{ .Name }}) Round() {{ .Name }} {
{{- if .Decimal }}
	if x&{{ .Mask }} >= {{ .Half }} {
		return {{ .Name }}(int64(x&^{{ .Mask }}) + {{ .Factor }})
	}
	return x &^ {{ .Mask }}
{{- else }}
	return x
{{- end }}
}

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y
func (x {{ .Name }}) Cmp(y {{ .Name }}) int {
	return mathutil.Int64Cmp(int64(x), int64(y))
}

// Eq returns x == y.
func (x {{ .Name }}) Eq(y {{ .Name }}) bool {
	return x == y
}

// CmpInt compares x and an integer.
// Returns -1 if x < r, 0 if x == r, 1 if x > r
func (x {{ .Name }}) CmpInt(r int64) int {
{{- if .Decimal }}
	return mathutil.Int128From64(int64(x)).Cmp(mathutil.Int128From64(r).Lsh({{ .Decimal }}))
{{- else }}
	return mathutil.Int64Cmp(int64(x), r)
{{- end }}
}

// EqInt returns x == r.
func (x {{ .Name }}) EqInt(r int64) bool {
	return x.CmpInt(r) == 0
}

// Int returns the integral part of x, truncated toward zero.
func (x {{ .Name }}) Int() int64 {
	return int64(x) / {{ .Factor }}
}

// Float64 returns x as float64.
func (x {{ .Name }}) Float64() float64 {
	return float64(x) / {{ .Factor }}
}

// Float32 returns x as float32.
func (x {{ .Name }}) Float32() float32 {
	return float32(x) / {{ .Factor }}
}

// Decimal returns the exact decimal value of x.
func (x {{ .Name }}) Decimal() decimal.Decimal {
	return toDecimal(int64(x), {{ .Decimal }})
}

// String returns the exact decimal representation of x.
func (x {{ .Name }}) String() string {
	return x.Decimal().String()
}
`
