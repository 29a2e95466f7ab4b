package cplx

import "github.com/npillmayer/cplx/fnum"

// === Rectangular Complex ===================================================

// Complex is a complex number real + imag·i, with components of type T.
//
// Complex values are immutable: every operation returns a new value.
// Comparing with == compares components, following float semantics (a value
// containing NaN is unequal to every value, including itself). Components are
// never normalized or validated.
type Complex[T fnum.Float] struct {
	real T
	imag T
}

// New creates a complex number from its real and imaginary part.
func New[T fnum.Float](real, imag T) Complex[T] {
	return Complex[T]{real: real, imag: imag}
}

// I returns the imaginary unit (0,1).
func I[T fnum.Float]() Complex[T] {
	return Complex[T]{imag: 1}
}

// One returns the multiplicative identity (1,0).
func One[T fnum.Float]() Complex[T] {
	return Complex[T]{real: 1}
}

// Zero returns (0,0).
func Zero[T fnum.Float]() Complex[T] {
	return Complex[T]{}
}

// Real returns the real part of z.
func (z Complex[T]) Real() T {
	return z.real
}

// Imag returns the imaginary part of z.
func (z Complex[T]) Imag() T {
	return z.imag
}

// Conj returns the complex conjugate (real, -imag).
func (z Complex[T]) Conj() Complex[T] {
	return New(z.real, -z.imag)
}

// SquareAbs returns |z|², i.e. real² + imag².
func (z Complex[T]) SquareAbs() T {
	return T(z.real*z.real) + T(z.imag*z.imag)
}

// Abs returns the absolute value |z|.
func (z Complex[T]) Abs() T {
	return fnum.Sqrt(z.SquareAbs())
}

// Arg returns the argument of z on the interval (-π, π].
// Arg of zero is 0, regardless of the signs of the zero components.
func (z Complex[T]) Arg() T {
	if z.real == 0 && z.imag == 0 {
		return 0
	}
	return fnum.Atan2(z.imag, z.real)
}

// Sqrt returns the principal square root of z, i.e. the root with a
// non-negative real part.
func (z Complex[T]) Sqrt() Complex[T] {
	abs := z.Abs()
	two := fnum.Two[T]()
	return New(
		fnum.Sqrt((z.real+abs)/two),
		fnum.Signum(z.imag)*fnum.Sqrt((-z.real+abs)/two),
	)
}

// Square returns z·z.
func (z Complex[T]) Square() Complex[T] {
	return z.Mul(z)
}

// Inv returns the multiplicative inverse 1/z.
// The inverse of zero has NaN components.
func (z Complex[T]) Inv() Complex[T] {
	return z.Conj().DivReal(z.SquareAbs())
}

// Powi returns z raised to an integer power, using exponentiation by squaring.
// z⁰ is (1,0) for every z, including zero. For negative exponents the positive
// power is calculated first and then inverted.
func (z Complex[T]) Powi(exponent int64) Complex[T] {
	if exponent == 0 {
		return One[T]()
	}
	n := uint64(exponent)
	if exponent < 0 {
		n = uint64(-exponent) // -MinInt64 wraps to MinInt64, which is 1<<63 as uint64
	}
	base := z
	for n&1 == 0 {
		base = base.Mul(base)
		n >>= 1
	}
	result := base
	for n >>= 1; n > 0; n >>= 1 {
		base = base.Mul(base)
		if n&1 == 1 {
			result = result.Mul(base)
		}
	}
	if exponent < 0 {
		return result.Inv()
	}
	return result
}

// Powf returns z raised to a real power, using De Moivre's formula.
func (z Complex[T]) Powf(exponent T) Complex[T] {
	return One[T]().Rotated(z.Arg() * exponent).MulReal(fnum.Pow(z.Abs(), exponent))
}

// Powc returns z raised to a complex power.
func (z Complex[T]) Powc(exponent Complex[T]) Complex[T] {
	rot := z.Ln().Mul(I[T]()).MulReal(exponent.imag).Exp()
	return z.Powf(exponent.real).Mul(rot)
}

// Rotated returns z rotated counter-clockwise around the origin by theta
// (in radians).
func (z Complex[T]) Rotated(theta T) Complex[T] {
	return z.Mul(New(fnum.Cos(theta), fnum.Sin(theta)))
}

// Exp returns e raised to the power of z.
func (z Complex[T]) Exp() Complex[T] {
	return New(fnum.Cos(z.imag), fnum.Sin(z.imag)).MulReal(fnum.Exp(z.real))
}

// Expf returns base raised to the power of z.
// For base 0 the result is (0,0).
func (z Complex[T]) Expf(base T) Complex[T] {
	if base == 0 {
		return Zero[T]()
	}
	return z.MulReal(fnum.Ln(base)).Exp()
}

// LnAbs returns the natural logarithm of |z|. It is -Inf for zero.
func (z Complex[T]) LnAbs() T {
	return fnum.Ln(z.SquareAbs()) / fnum.Two[T]()
}

// Ln returns the principal natural logarithm of z.
// Ln of zero is (-Inf, 0).
func (z Complex[T]) Ln() Complex[T] {
	return New(z.LnAbs(), z.Arg())
}

// Log returns the logarithm base 10 of z.
func (z Complex[T]) Log() Complex[T] {
	return z.Ln().DivReal(fnum.Ln(fnum.Ten[T]()))
}

// Logn returns the logarithm of z to a real base.
func (z Complex[T]) Logn(base T) Complex[T] {
	return z.Ln().DivReal(fnum.Ln(base))
}

// Polarize converts z to polar representation (|z|, arg z).
func (z Complex[T]) Polarize() Polar[T] {
	return NewPolar(z.Abs(), z.Arg())
}
