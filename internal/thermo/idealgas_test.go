package thermo

import (
	"math"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdealGasReferenceIdentity(t *testing.T) {
	x := NewEthane()
	H, S, err := x.IdealGas(300, 101.3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, H)
	assert.Equal(t, 0.0, S)
}

func TestIdealGasEnthalpyIncreasesWithTemperature(t *testing.T) {
	x := NewEthane()
	prev := math.Inf(-1)
	for T := 200.0; T <= 1500; T += 10 {
		require.True(t, x.Substance().Cp(T) > 0, "Cp(%v)", T)
		H, _, err := x.IdealGas(T, 200)
		require.NoError(t, err)
		assert.Greater(t, H, prev, "T=%v", T)
		prev = H
	}
}

func TestIdealGasEntropyDecreasesWithPressure(t *testing.T) {
	x := NewEthane()
	prev := math.Inf(1)
	for _, P := range []float64{0.1, 1, 10, 101.3, 200, 1000, 5000} {
		_, S, err := x.IdealGas(350, P)
		require.NoError(t, err)
		assert.Less(t, S, prev, "P=%v", P)
		prev = S
	}
}

// the closed form must agree with a midpoint quadrature of Cp and Cp/T
func TestIdealGasEnthalpyIsIntegralOfCp(t *testing.T) {
	x := NewEthane()
	c := x.Substance()
	const n = 20000
	T0, T := 300.0, 800.0
	dT := (T - T0) / n
	var sumH, sumS float64
	for i := 0; i < n; i++ {
		Tm := T0 + (float64(i)+0.5)*dT
		sumH += c.Cp(Tm) * dT
		sumS += c.Cp(Tm) / Tm * dT
	}
	H, S, err := x.IdealGas(T, 101.3)
	require.NoError(t, err)
	assert.InEpsilon(t, sumH, H, 1e-8)
	assert.InEpsilon(t, sumS, S, 1e-7)
}

func TestIdealGasInvalid(t *testing.T) {
	x := NewEthane()
	for _, T := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, _, err := x.IdealGas(T, 101.3)
		assert.True(t, merry.Is(err, ErrInvalidTemperature), "T=%v", T)
	}
	_, _, err := x.IdealGas(300, 0)
	assert.True(t, merry.Is(err, ErrInvalidMagnitude))
}
