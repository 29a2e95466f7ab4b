package fnum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type angle float64 // a named type must satisfy Float as well

func TestConstants(t *testing.T) {
	assert.Equal(t, float32(2), Two[float32]())
	assert.Equal(t, 10.0, Ten[float64]())
	assert.Equal(t, 0.5, Half[float64]())
	assert.Equal(t, math.Pi, Pi[float64]())
	assert.Equal(t, float32(math.Pi), Pi[float32]())
	assert.Equal(t, angle(math.Pi), Pi[angle]())
	assert.Equal(t, 1.0, One[float64]()+Zero[float64]())
}

func TestSignum(t *testing.T) {
	assert.Equal(t, 1.0, Signum(3.5))
	assert.Equal(t, -1.0, Signum(-0.1))
	assert.Equal(t, 1.0, Signum(0.0))
	assert.Equal(t, -1.0, Signum(math.Copysign(0, -1)))
	assert.Equal(t, float32(-1), Signum(float32(math.Inf(-1))))
	assert.True(t, IsNaN(Signum(math.NaN())))
}

func TestNonFinite(t *testing.T) {
	assert.True(t, IsInf(Inf[float32](1), 1))
	assert.True(t, IsInf(Inf[float64](-1), -1))
	assert.False(t, IsInf(Inf[float64](-1), 1))
	assert.True(t, IsNaN(NaN[float32]()))
	assert.False(t, IsNaN(Inf[float64](1)))
	assert.True(t, Signbit(math.Copysign(0, -1)))
	assert.False(t, Signbit(0.0))
}

func TestElementary(t *testing.T) {
	assert.Equal(t, 3.0, Sqrt(9.0))
	assert.Equal(t, float32(5), Abs(float32(-5)))
	assert.Equal(t, math.Inf(-1), Ln(0.0))
	assert.Equal(t, 8.0, Pow(2.0, 3.0))
	assert.InDelta(t, 1.0, float64(Exp(float32(0))), 1e-9)
	assert.InDelta(t, -1.0, Cos(math.Pi), 1e-15)
	assert.InDelta(t, 0.0, Sin(math.Pi), 1e-15)
	assert.InDelta(t, math.Pi, Acos(-1.0), 1e-15)
	assert.Equal(t, math.Pi, Atan2(0.0, -1.0))
	assert.Equal(t, 0.0, Atan2(0.0, 0.0))
	assert.InDelta(t, 0.0, Cosh(0.0)-1, 1e-15)
	assert.Equal(t, 0.0, Sinh(0.0))
	assert.InDelta(t, -1.0, Remainder(2*math.Pi-1, 2*math.Pi), 1e-12)
}
