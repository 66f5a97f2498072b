// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package width maps a requested bit count to the smallest supported
// integer width able to hold it.
//
// Widths of 8, 16, 32 and 64 bits are native Go integers. The 128-bit width
// is the widened domain used for intermediate results only; no value is
// ever stored in it.
package width

import (
	"fmt"
	"unsafe"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("width")

// Max is the largest width a request can be resolved to.
const Max = 128

// MaxNative is the largest width backed by a native Go integer.
const MaxNative = 64

var supported = [...]int{8, 16, 32, 64, 128}

// Record is the result of a resolution.
type Record struct {
	// Requested is the bit count asked for.
	Requested int
	// Bits is the chosen width, the smallest supported one >= Requested.
	Bits int
	// Signed is true for two's complement storage.
	Signed bool
}

// Bytes returns the storage size in bytes.
func (r Record) Bytes() int {
	return r.Bits / 8
}

// Native returns true, if the width is backed by a builtin Go integer.
func (r Record) Native() bool {
	return r.Bits <= MaxNative
}

// TypeName returns the name of the storage type, like "int32" or "uint128".
func (r Record) TypeName() string {
	if r.Signed {
		return fmt.Sprintf("int%d", r.Bits)
	}
	return fmt.Sprintf("uint%d", r.Bits)
}

// Resolve returns the smallest supported width >= n.
// Returns an error, if n < 1 or n exceeds Max.
func Resolve(n int, signed bool) (Record, error) {
	if n < 1 {
		return Record{}, Error.New("bad bit count %d", n)
	}
	for _, w := range supported {
		if w >= n {
			return Record{Requested: n, Bits: w, Signed: signed}, nil
		}
	}
	return Record{}, Error.New("%d bits exceed the largest supported width of %d bits", n, Max)
}

// Signed resolves n bits of two's complement storage.
func Signed(n int) (Record, error) {
	return Resolve(n, true)
}

// Unsigned resolves n bits of unsigned storage.
func Unsigned(n int) (Record, error) {
	return Resolve(n, false)
}

// MustSigned is like Signed, but panics on error.
func MustSigned(n int) Record {
	r, err := Signed(n)
	if err != nil {
		panic(err)
	}
	return r
}

// MustUnsigned is like Unsigned, but panics on error.
func MustUnsigned(n int) Record {
	r, err := Unsigned(n)
	if err != nil {
		panic(err)
	}
	return r
}

// Of describes a native integer type.
func Of[T constraints.Integer]() Record {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	return Record{Requested: bits, Bits: bits, Signed: ^zero < 0}
}

// Fits returns true, if a value of type T can hold n bits.
func Fits[T constraints.Integer](n int) bool {
	return n >= 1 && n <= Of[T]().Bits
}
