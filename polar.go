package cplx

import "github.com/npillmayer/cplx/fnum"

// === Polar Complex =========================================================

// Polar is a complex number in polar representation radius·e^(i·angle).
//
// Polar values are canonical: the radius is non-negative and the angle lies in
// (-π, π]. Angles which differ by a multiple of 2π are reduced to the same
// representative only up to floating-point rounding, so comparing polar values
// with == is not reliable for independently computed angles. Use Equal.
type Polar[T fnum.Float] struct {
	radius T
	angle  T
}

// NewPolar creates a complex number in polar representation.
// A negative radius is made positive by turning the angle by π. The angle is
// then reduced to (-π, π].
func NewPolar[T fnum.Float](radius, angle T) Polar[T] {
	if radius < 0 {
		radius = -radius
		angle += fnum.Pi[T]()
	}
	return Polar[T]{radius: fnum.Abs(radius), angle: reduceAngle(angle)}
}

// Reduce an angle to fit into (-π, π].
// Non-finite angles result in NaN.
func reduceAngle[T fnum.Float](a T) T {
	pi := fnum.Pi[T]()
	if a > -pi && a <= pi {
		return a
	}
	a = fnum.Remainder(a, fnum.Two[T]()*pi)
	if a <= -pi {
		a += fnum.Two[T]() * pi
	}
	return a
}

// Radius returns |p|.
func (p Polar[T]) Radius() T {
	return p.radius
}

// Angle returns the argument of p, in (-π, π].
func (p Polar[T]) Angle() T {
	return p.angle
}

// Real returns the real part of p.
func (p Polar[T]) Real() T {
	return p.radius * fnum.Cos(p.angle)
}

// Imag returns the imaginary part of p.
func (p Polar[T]) Imag() T {
	return p.radius * fnum.Sin(p.angle)
}

// Unpolarize converts p to rectangular representation. It is the inverse of
// Complex.Polarize.
func (p Polar[T]) Unpolarize() Complex[T] {
	return New(p.Real(), p.Imag())
}

// Conj returns the complex conjugate of p.
func (p Polar[T]) Conj() Polar[T] {
	return NewPolar(p.radius, -p.angle)
}

// Sqrt returns the principal square root of p.
func (p Polar[T]) Sqrt() Polar[T] {
	return NewPolar(fnum.Sqrt(p.radius), p.angle/fnum.Two[T]())
}

// Inv returns the multiplicative inverse 1/p.
func (p Polar[T]) Inv() Polar[T] {
	return NewPolar(1/p.radius, -p.angle)
}

// Powf returns p raised to a real power.
func (p Polar[T]) Powf(exponent T) Polar[T] {
	return NewPolar(fnum.Pow(p.radius, exponent), p.angle*exponent)
}

// The following operations have no closed form in polar coordinates and are
// calculated in rectangular representation.

// Powc returns p raised to a complex power.
func (p Polar[T]) Powc(exponent Complex[T]) Polar[T] {
	return p.Unpolarize().Powc(exponent).Polarize()
}

// Powcp returns p raised to a complex power given in polar representation.
func (p Polar[T]) Powcp(exponent Polar[T]) Polar[T] {
	return p.Unpolarize().Powc(exponent.Unpolarize()).Polarize()
}

// Exp returns e raised to the power of p.
func (p Polar[T]) Exp() Polar[T] {
	return p.Unpolarize().Exp().Polarize()
}

// Ln returns the principal natural logarithm of p.
func (p Polar[T]) Ln() Polar[T] {
	return p.Unpolarize().Ln().Polarize()
}

// Log returns the logarithm base 10 of p.
func (p Polar[T]) Log() Polar[T] {
	return p.Unpolarize().Log().Polarize()
}

// Logn returns the logarithm of p to a real base.
func (p Polar[T]) Logn(base T) Polar[T] {
	return p.Unpolarize().Logn(base).Polarize()
}
