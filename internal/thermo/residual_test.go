package thermo

import (
	"math"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func derivCen(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestVirialTermsDerivatives(t *testing.T) {
	for _, Tr := range []float64{0.7, 0.9, 1.0, 1.1464, 1.5, 2.5, 4} {
		assert.InDelta(t, derivCen(B0, Tr, 1e-5), DB0dTr(Tr), 1e-7, "dB0/dTr at Tr=%v", Tr)
		assert.InDelta(t, derivCen(B1, Tr, 1e-5), DB1dTr(Tr), 1e-7, "dB1/dTr at Tr=%v", Tr)
	}
}

func TestVirialTermsAtUnitTr(t *testing.T) {
	assert.InDelta(t, 0.083-0.422, B0(1), 1e-15)
	assert.InDelta(t, 0.139-0.172, B1(1), 1e-15)
	assert.InDelta(t, 1.6*0.422, DB0dTr(1), 1e-15)
	assert.InDelta(t, 4.2*0.172, DB1dTr(1), 1e-15)
}

func TestResidualVanishesAtLowPressure(t *testing.T) {
	x := NewEthane()
	prevH, prevS := math.Inf(1), math.Inf(1)
	for _, P := range []float64{100, 10, 1, 1e-2, 1e-4, 1e-6} {
		H, S, err := x.Residual(350, P)
		require.NoError(t, err)
		assert.Less(t, math.Abs(H), prevH)
		assert.Less(t, math.Abs(S), prevS)
		prevH, prevS = math.Abs(H), math.Abs(S)
	}
	assert.Less(t, prevH, 1e-6)
	assert.Less(t, prevS, 1e-8)
}

func TestResidualIsLinearInPr(t *testing.T) {
	x := NewEthane()
	H1, S1, err := x.Residual(400, 100)
	require.NoError(t, err)
	H2, S2, err := x.Residual(400, 300)
	require.NoError(t, err)
	assert.InEpsilon(t, 3*H1, H2, 1e-12)
	assert.InEpsilon(t, 3*S1, S2, 1e-12)
}

func TestResidualGolden(t *testing.T) {
	x := NewEthane()
	H, S, err := x.Residual(350, 200)
	require.NoError(t, err)
	assert.InEpsilon(t, -86.536128148055, H, 1e-9)
	assert.InEpsilon(t, -0.1726718540784767, S, 1e-9)

	r, err := x.Reduce(350, 200)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1464133639043563, r.Tr, 1e-12)
	assert.InEpsilon(t, 0.04081632653061224, r.Pr, 1e-12)
}

func TestResidualInvalidReducedState(t *testing.T) {
	x := NewEthane()
	for _, c := range [][2]float64{{0, 100}, {-10, 100}, {350, 0}, {350, -1}, {math.NaN(), 100}, {350, math.Inf(1)}} {
		_, _, err := x.Residual(c[0], c[1])
		assert.True(t, merry.Is(err, ErrInvalidReducedState), "T=%v P=%v", c[0], c[1])
	}
}
