/*
Package fnum provides numeric constants and real-valued elementary functions
generically over Go's floating-point types.

Package cplx is written against the capability set of this package rather
than against a concrete float type. All transcendental functions are evaluated
in float64 and converted back to the type parameter, which for float32 gives
results at least as accurate as a native single-precision implementation.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fnum

import "math"

// Float is the type set of floating-point types a complex value may be built upon.
type Float interface {
	~float32 | ~float64
}

// === Constants =============================================================

// Zero returns 0.
func Zero[T Float]() T { return 0 }

// One returns 1.
func One[T Float]() T { return 1 }

// Two returns 2.
func Two[T Float]() T { return 2 }

// Ten returns 10.
func Ten[T Float]() T { return 10 }

// Half returns 0.5.
func Half[T Float]() T { return 0.5 }

// Pi returns π, rounded to T.
func Pi[T Float]() T { return T(math.Pi) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T Float](sign int) T { return T(math.Inf(sign)) }

// NaN returns a not-a-number value of type T.
func NaN[T Float]() T { return T(math.NaN()) }

// === Predicates ============================================================

// IsNaN reports whether x is not-a-number.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity, according to sign.
// See math.IsInf.
func IsInf[T Float](x T, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Signbit reports whether x is negative or negative zero.
func Signbit[T Float](x T) bool {
	return math.Signbit(float64(x))
}

// Signum returns 1 for +0 and positive x, -1 for -0 and negative x,
// and NaN for NaN.
func Signum[T Float](x T) T {
	if IsNaN(x) {
		return x
	}
	return T(math.Copysign(1, float64(x)))
}

// === Elementary functions ==================================================

// Abs returns |x|.
func Abs[T Float](x T) T { return T(math.Abs(float64(x))) }

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Exp returns e**x.
func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Ln returns the natural logarithm of x.
func Ln[T Float](x T) T { return T(math.Log(float64(x))) }

// Pow returns x**y.
func Pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Sinh returns the hyperbolic sine of x.
func Sinh[T Float](x T) T { return T(math.Sinh(float64(x))) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Float](x T) T { return T(math.Cosh(float64(x))) }

// Acos returns the arccosine, in radians, of x.
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Remainder returns the IEEE 754 floating-point remainder of x/y.
func Remainder[T Float](x, y T) T {
	return T(math.Remainder(float64(x), float64(y)))
}
