// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements binary fixed-point numbers, where a value is
// stored as an integer scaled by 2^D, D being the number of decimal bits.
//
// Every supported format is a distinct Go type, named after its integral and
// decimal bits: I24F8 has 24 integral and 8 decimal bits and is stored in an
// int32. The storage type is the smallest native integer able to hold all the
// bits of the format, see package width. Types are generated by
// cmd/fixedgen, so a format that does not fit a native integer is rejected
// before the program is compiled.
//
// Multiplications, divisions, rescales and comparisons are computed in an
// intermediate domain wide enough for the exact result, up to 128 bits, and
// then narrowed back into the destination format. Narrowing of a result,
// which does not fit the destination storage, wraps, like Go integer
// conversions do. Division by zero panics with ErrDivisionByZero.
//
// Methods of a type operate on values of the same format and on plain
// integers. Package-level generic functions, like Add or Cmp, combine values
// of any two formats, the result taking the format of the first operand.
package fixed

import (
	"github.com/zeebo/errs"
)

//go:generate go run ./cmd/fixedgen -i 4 -d 4
//go:generate go run ./cmd/fixedgen -i 8 -d 8
//go:generate go run ./cmd/fixedgen -i 1 -d 15
//go:generate go run ./cmd/fixedgen -i 12 -d 12
//go:generate go run ./cmd/fixedgen -i 26 -d 6
//go:generate go run ./cmd/fixedgen -i 24 -d 8
//go:generate go run ./cmd/fixedgen -i 16 -d 16
//go:generate go run ./cmd/fixedgen -i 40 -d 20
//go:generate go run ./cmd/fixedgen -i 52 -d 12
//go:generate go run ./cmd/fixedgen -i 32 -d 32

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("fixed")

	// ErrDivisionByZero is the value every division panics with, if the divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")

	errRange = Error.New("value out of range")
)

// Number is implemented by all fixed-point types of this package.
type Number[T any] interface {
	// Layout returns the format of the type.
	Layout() Layout
	// Raw returns the scaled integer.
	Raw() int64
	// WithRaw narrows raw into the storage of the type.
	WithRaw(raw int64) T
}
