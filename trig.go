package cplx

import "github.com/npillmayer/cplx/fnum"

// All functions in this file are closed forms built from real-valued
// sin/cos/sinh/cosh and from Ln/Sqrt. Inverse functions inherit the branch
// cuts of Ln and Sqrt.

// === Trigonometric =========================================================

// Sin returns the sine of z.
func (z Complex[T]) Sin() Complex[T] {
	return New(
		fnum.Sin(z.real)*fnum.Cosh(z.imag),
		fnum.Cos(z.real)*fnum.Sinh(z.imag),
	)
}

// Cos returns the cosine of z.
func (z Complex[T]) Cos() Complex[T] {
	return New(
		fnum.Cos(z.real)*fnum.Cosh(z.imag),
		-fnum.Sin(z.real)*fnum.Sinh(z.imag),
	)
}

// Tan returns the tangent of z.
func (z Complex[T]) Tan() Complex[T] {
	return z.Sin().Div(z.Cos())
}

// Cot returns the cotangent of z.
func (z Complex[T]) Cot() Complex[T] {
	return z.Tan().Inv()
}

// Sec returns the secant of z.
func (z Complex[T]) Sec() Complex[T] {
	return z.Cos().Inv()
}

// Csc returns the cosecant of z.
func (z Complex[T]) Csc() Complex[T] {
	return z.Sin().Inv()
}

// --- Inverse trigonometric -------------------------------------------------

// Asin returns the arcsine of z, -i·ln(√(1-z²) + i·z).
func (z Complex[T]) Asin() Complex[T] {
	i := I[T]()
	root := RealSub(1, z.Square()).Sqrt()
	return root.Add(i.Mul(z)).Ln().Mul(i.Neg())
}

// Acos returns the arccosine of z, i·ln(z - i·√(1-z²)).
func (z Complex[T]) Acos() Complex[T] {
	i := I[T]()
	root := RealSub(1, z.Square()).Sqrt()
	return root.Div(i).Add(z).Ln().Mul(i)
}

// Atan returns the arctangent of z.
func (z Complex[T]) Atan() Complex[T] {
	return z.Div(z.Square().AddReal(1).Sqrt()).Asin()
}

// Acot returns the arccotangent of z.
func (z Complex[T]) Acot() Complex[T] {
	return z.Inv().Atan()
}

// Asec returns the arcsecant of z.
func (z Complex[T]) Asec() Complex[T] {
	return z.Inv().Acos()
}

// Acsc returns the arccosecant of z.
func (z Complex[T]) Acsc() Complex[T] {
	return z.Inv().Asin()
}

// === Hyperbolic ============================================================

// Sinh returns the hyperbolic sine of z.
func (z Complex[T]) Sinh() Complex[T] {
	return New(
		fnum.Sinh(z.real)*fnum.Cos(z.imag),
		fnum.Cosh(z.real)*fnum.Sin(z.imag),
	)
}

// Cosh returns the hyperbolic cosine of z.
func (z Complex[T]) Cosh() Complex[T] {
	return New(
		fnum.Cosh(z.real)*fnum.Cos(z.imag),
		fnum.Sinh(z.real)*fnum.Sin(z.imag),
	)
}

// Tanh returns the hyperbolic tangent of z.
func (z Complex[T]) Tanh() Complex[T] {
	return z.Sinh().Div(z.Cosh())
}

// Coth returns the hyperbolic cotangent of z.
func (z Complex[T]) Coth() Complex[T] {
	return z.Tanh().Inv()
}

// Sech returns the hyperbolic secant of z.
func (z Complex[T]) Sech() Complex[T] {
	return z.Cosh().Inv()
}

// Csch returns the hyperbolic cosecant of z.
func (z Complex[T]) Csch() Complex[T] {
	return z.Sinh().Inv()
}

// --- Inverse hyperbolic ----------------------------------------------------

// Asinh returns the hyperbolic arcsine of z, ln(√(z²+1) + z).
func (z Complex[T]) Asinh() Complex[T] {
	return z.Square().AddReal(1).Sqrt().Add(z).Ln()
}

// Acosh returns the hyperbolic arccosine of z, ln(√(z²-1) + z).
func (z Complex[T]) Acosh() Complex[T] {
	return z.Square().SubReal(1).Sqrt().Add(z).Ln()
}

// Atanh returns the hyperbolic arctangent of z, ½·ln((1+z)/(1-z)).
func (z Complex[T]) Atanh() Complex[T] {
	q := z.AddReal(1).Div(RealSub(1, z))
	return q.Ln().MulReal(fnum.Half[T]())
}

// Acoth returns the hyperbolic arccotangent of z.
func (z Complex[T]) Acoth() Complex[T] {
	return z.Inv().Atanh()
}

// Asech returns the hyperbolic arcsecant of z.
func (z Complex[T]) Asech() Complex[T] {
	return z.Inv().Acosh()
}

// Acsch returns the hyperbolic arccosecant of z.
func (z Complex[T]) Acsch() Complex[T] {
	return z.Inv().Asinh()
}
