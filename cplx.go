/*
Package cplx implements complex numbers generically over Go's floating-point
types, in rectangular and in polar representation.

Complex[T] is the primary representation. It offers algebraic operations,
powers, exponentials, logarithms and the full set of trigonometric and
hyperbolic functions, including their inverses. Polar[T] holds a radius and an
angle and exists to make multiplication, division and real powers cheap.
Both convert into each other with Polarize and Unpolarize.

Go has no operator overloading, so arithmetic is expressed by methods:

	z := cplx.New(3.0, 4.0)
	w := z.Mul(cplx.New(-2.5, 6.23)).AddReal(1)
	z.MulAssign(w)

All operations are pure functions on values. None of them returns an error:
exceptional conditions like division by zero yield NaN or infinite components,
as IEEE-754 arithmetic does. There are two exceptions to this rule: the
argument of 0 is 0, and the logarithm of 0 is (-Inf, 0).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cplx

import (
	"math"

	"github.com/npillmayer/cplx/fnum"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cplx'
func tracer() tracing.Trace {
	return tracing.Select("cplx")
}

// === Tolerance =============================================================

// Epsilon : numbers below ε are considered 0.
// It is used by Is0, Zap and the Equal methods, never by the arithmetic itself.
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0[T fnum.Float](n T) bool {
	return math.Abs(float64(n)) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap[T fnum.Float](n T) T {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round[T fnum.Float](n T) T {
	return T(math.Round(float64(n)/Epsilon) * Epsilon)
}
