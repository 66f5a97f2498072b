// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"golang.org/x/exp/constraints"
)

// New returns r/2^shift as T. The multiplication by the factor of T
// is done before the shift, so no precision is lost on the way.
func New[T Number[T]](r int64, shift uint) T {
	var t T
	return t.WithRaw(newRaw(r, shift, t.Layout()))
}

// FromInt returns an integer as T.
func FromInt[T Number[T], R constraints.Integer](r R) T {
	return New[T](int64(r), 0)
}

// Convert returns s in the format of T. Decimal bits, which T cannot hold,
// are truncated toward zero.
func Convert[T Number[T], S Number[S]](s S) T {
	var t T
	return t.WithRaw(rescale(s.Raw(), s.Layout(), t.Layout()))
}

// Add returns a+b in the format of a.
func Add[A Number[A], B Number[B]](a A, b B) A {
	return a.WithRaw(a.Raw() + rescale(b.Raw(), b.Layout(), a.Layout()))
}

// Sub returns a-b in the format of a.
func Sub[A Number[A], B Number[B]](a A, b B) A {
	return a.WithRaw(a.Raw() - rescale(b.Raw(), b.Layout(), a.Layout()))
}

// Mul returns a*b in the format of a.
func Mul[A Number[A], B Number[B]](a A, b B) A {
	fa, fb := a.Layout(), b.Layout()
	return a.WithRaw(mulQuo(fa.span()+fb.span(), a.Raw(), b.Raw(), fb.Factor()))
}

// Div returns a/b in the format of a. If b == 0, Div panics.
func Div[A Number[A], B Number[B]](a A, b B) A {
	fa, fb := a.Layout(), b.Layout()
	return a.WithRaw(mulQuo(fa.span()+fb.Decimal(), a.Raw(), fb.Factor(), b.Raw()))
}

// AddAssign sets *a to *a+b.
func AddAssign[A Number[A], B Number[B]](a *A, b B) {
	*a = Add(*a, b)
}

// SubAssign sets *a to *a-b.
func SubAssign[A Number[A], B Number[B]](a *A, b B) {
	*a = Sub(*a, b)
}

// MulAssign sets *a to *a*b.
func MulAssign[A Number[A], B Number[B]](a *A, b B) {
	*a = Mul(*a, b)
}

// DivAssign sets *a to *a/b. If b == 0, DivAssign panics.
func DivAssign[A Number[A], B Number[B]](a *A, b B) {
	*a = Div(*a, b)
}

// Cmp compares two values of any formats.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Cmp[A Number[A], B Number[B]](a A, b B) int {
	fa, fb := a.Layout(), b.Layout()
	need := max(fa.span()+fb.Decimal(), fb.span()+fa.Decimal())
	return cmpScaled(need, a.Raw(), fb.Factor(), b.Raw(), fa.Factor())
}

// Equal returns a == b.
func Equal[A Number[A], B Number[B]](a A, b B) bool {
	return Cmp(a, b) == 0
}

// Less returns a < b.
func Less[A Number[A], B Number[B]](a A, b B) bool {
	return Cmp(a, b) < 0
}

// LessOrEqual returns a <= b.
func LessOrEqual[A Number[A], B Number[B]](a A, b B) bool {
	return Cmp(a, b) <= 0
}

// Greater returns a > b.
func Greater[A Number[A], B Number[B]](a A, b B) bool {
	return Cmp(a, b) > 0
}

// GreaterOrEqual returns a >= b.
func GreaterOrEqual[A Number[A], B Number[B]](a A, b B) bool {
	return Cmp(a, b) >= 0
}
