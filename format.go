package cplx

import (
	"fmt"

	"github.com/npillmayer/cplx/fnum"
)

// String renders z as "re + imi" or "re - imi", depending on the sign of the
// imaginary part. Negative zero counts as negative, NaN as positive.
func (z Complex[T]) String() string {
	if fnum.Signbit(z.imag) {
		return fmt.Sprintf("%v - %vi", z.real, -z.imag)
	}
	return fmt.Sprintf("%v + %vi", z.real, z.imag)
}

// String renders p as "r∠θ", with θ in radians.
func (p Polar[T]) String() string {
	return fmt.Sprintf("%v∠%v", p.radius, p.angle)
}
