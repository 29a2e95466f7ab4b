package cplx

import "github.com/npillmayer/cplx/fnum"

// Arithmetic operators. Each binary operator X has an in-place variant
// XAssign, with z.XAssign(w) ≡ *z = z.X(w).

// === Rectangular ===========================================================

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return New(z.real+w.real, z.imag+w.imag)
}

// AddReal returns z + x.
func (z Complex[T]) AddReal(x T) Complex[T] {
	return New(z.real+x, z.imag)
}

// RealAdd returns x + z.
func RealAdd[T fnum.Float](x T, z Complex[T]) Complex[T] {
	return New(x+z.real, z.imag)
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return New(z.real-w.real, z.imag-w.imag)
}

// SubReal returns z - x.
func (z Complex[T]) SubReal(x T) Complex[T] {
	return New(z.real-x, z.imag)
}

// RealSub returns x - z.
func RealSub[T fnum.Float](x T, z Complex[T]) Complex[T] {
	return New(x-z.real, -z.imag)
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] {
	return New(-z.real, -z.imag)
}

// Mul returns z · w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	// conversions round every product and keep the compiler from fusing to FMA
	return New(
		T(z.real*w.real)-T(z.imag*w.imag),
		T(z.real*w.imag)+T(z.imag*w.real),
	)
}

// MulReal returns z · x.
func (z Complex[T]) MulReal(x T) Complex[T] {
	return New(z.real*x, z.imag*x)
}

// RealMul returns x · z.
func RealMul[T fnum.Float](x T, z Complex[T]) Complex[T] {
	return New(z.real*x, z.imag*x)
}

// Div returns z / w, calculated as z · 1/w.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	return z.Mul(w.Inv())
}

// DivReal returns z / x.
func (z Complex[T]) DivReal(x T) Complex[T] {
	return New(z.real/x, z.imag/x)
}

// RealDiv returns x / z.
func RealDiv[T fnum.Float](x T, z Complex[T]) Complex[T] {
	return z.Inv().MulReal(x)
}

// AddAssign sets z to z + w.
func (z *Complex[T]) AddAssign(w Complex[T]) {
	*z = z.Add(w)
}

// AddRealAssign sets z to z + x.
func (z *Complex[T]) AddRealAssign(x T) {
	*z = z.AddReal(x)
}

// SubAssign sets z to z - w.
func (z *Complex[T]) SubAssign(w Complex[T]) {
	*z = z.Sub(w)
}

// SubRealAssign sets z to z - x.
func (z *Complex[T]) SubRealAssign(x T) {
	*z = z.SubReal(x)
}

// MulAssign sets z to z · w.
func (z *Complex[T]) MulAssign(w Complex[T]) {
	*z = z.Mul(w)
}

// MulRealAssign sets z to z · x.
func (z *Complex[T]) MulRealAssign(x T) {
	*z = z.MulReal(x)
}

// DivAssign sets z to z / w.
func (z *Complex[T]) DivAssign(w Complex[T]) {
	*z = z.Div(w)
}

// DivRealAssign sets z to z / x.
func (z *Complex[T]) DivRealAssign(x T) {
	*z = z.DivReal(x)
}

// === Polar =================================================================

// Add returns p + q. Addition is done in rectangular representation.
func (p Polar[T]) Add(q Polar[T]) Polar[T] {
	return p.Unpolarize().Add(q.Unpolarize()).Polarize()
}

// Sub returns p - q. Subtraction is done in rectangular representation.
func (p Polar[T]) Sub(q Polar[T]) Polar[T] {
	return p.Unpolarize().Sub(q.Unpolarize()).Polarize()
}

// Neg returns -p. The sign of the radius is turned into the angle by NewPolar.
func (p Polar[T]) Neg() Polar[T] {
	return NewPolar(-p.radius, p.angle)
}

// Mul returns p · q, multiplying the radii and adding the angles.
func (p Polar[T]) Mul(q Polar[T]) Polar[T] {
	return NewPolar(p.radius*q.radius, p.angle+q.angle)
}

// MulReal returns p · x.
func (p Polar[T]) MulReal(x T) Polar[T] {
	return NewPolar(p.radius*x, p.angle)
}

// RealMulPolar returns x · p.
func RealMulPolar[T fnum.Float](x T, p Polar[T]) Polar[T] {
	return NewPolar(p.radius*x, p.angle)
}

// Div returns p / q, dividing the radii and subtracting the angles.
func (p Polar[T]) Div(q Polar[T]) Polar[T] {
	return NewPolar(p.radius/q.radius, p.angle-q.angle)
}

// DivReal returns p / x.
func (p Polar[T]) DivReal(x T) Polar[T] {
	return NewPolar(p.radius/x, p.angle)
}

// RealDivPolar returns x / p.
func RealDivPolar[T fnum.Float](x T, p Polar[T]) Polar[T] {
	return NewPolar(x/p.radius, -p.angle)
}

// MulAssign sets p to p · q.
func (p *Polar[T]) MulAssign(q Polar[T]) {
	*p = p.Mul(q)
}

// MulRealAssign sets p to p · x.
func (p *Polar[T]) MulRealAssign(x T) {
	*p = p.MulReal(x)
}

// DivAssign sets p to p / q.
func (p *Polar[T]) DivAssign(q Polar[T]) {
	*p = p.Div(q)
}

// DivRealAssign sets p to p / x.
func (p *Polar[T]) DivRealAssign(x T) {
	*p = p.DivReal(x)
}
