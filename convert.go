package cplx

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/cplx/fnum"
	"gonum.org/v1/gonum/floats/scalar"
)

// === Interop with builtin complex types ====================================

// FromBuiltin creates a complex number from a Go builtin complex value.
// Non-finite values are kept as they are.
func FromBuiltin[T fnum.Float](c complex128) Complex[T] {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Debugf("created complex for non-finite value %v", c)
	}
	return New(T(real(c)), T(imag(c)))
}

// Builtin returns z as a Go builtin complex128 value.
func (z Complex[T]) Builtin() complex128 {
	return complex(float64(z.real), float64(z.imag))
}

// F is a quick notation for getting the components of z.
func (z Complex[T]) F() (T, T) {
	return z.real, z.imag
}

// IsNaN is a predicate: is either component of z NaN, while neither is infinite?
// This follows math/cmplx.IsNaN.
func (z Complex[T]) IsNaN() bool {
	if z.IsInf() {
		return false
	}
	return fnum.IsNaN(z.real) || fnum.IsNaN(z.imag)
}

// IsInf is a predicate: is either component of z infinite?
func (z Complex[T]) IsInf() bool {
	return fnum.IsInf(z.real, 0) || fnum.IsInf(z.imag, 0)
}

// === Tolerant comparison ===================================================

// Is0 is a predicate: is |z| = 0 within Epsilon ?
func (z Complex[T]) Is0() bool {
	return Is0(z.real) && Is0(z.imag)
}

// Zap rounds components of z to 0 if they "mean" to be zero.
func (z Complex[T]) Zap() Complex[T] {
	return New(Zap(z.real), Zap(z.imag))
}

// Equal compares two complex numbers component by component, allowing for an
// absolute or relative difference of Epsilon. Use == for exact comparison.
func (z Complex[T]) Equal(w Complex[T]) bool {
	return near(z.real, w.real) && near(z.imag, w.imag)
}

// Equal compares two polar complex numbers by their rectangular coordinates,
// allowing for an absolute or relative difference of Epsilon. Angles differing
// by a multiple of 2π are therefore considered equal, as are all angles of
// radius 0.
func (p Polar[T]) Equal(q Polar[T]) bool {
	return p.Unpolarize().Equal(q.Unpolarize())
}

func near[T fnum.Float](a, b T) bool {
	if a == b { // covers infinities of equal sign
		return true
	}
	x, y := float64(a), float64(b)
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	return scalar.EqualWithinAbsOrRel(x, y, Epsilon, Epsilon)
}
