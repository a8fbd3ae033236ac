package thermo

import (
	"math"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePressure(t *testing.T) {
	for _, c := range []struct {
		p    float64
		unit PressureUnit
		kPa  float64
	}{
		{1, Atm, 101.325},
		{1, Bar, 100},
		{2, Bar, 200},
		{1, Pa, 0.001},
		{101325, Pa, 101.325},
		{101.3, KPa, 101.3},
	} {
		v, err := NormalizePressure(c.p, c.unit)
		require.NoError(t, err)
		assert.Equal(t, c.kPa, v, "%v %s", c.p, c.unit)
	}
}

func TestNormalizePressureRoundTrip(t *testing.T) {
	for _, unit := range PressureUnits {
		for _, p := range []float64{1e-3, 0.5, 1, 2, 13.7, 1e5, 4.2e6} {
			kPa, err := NormalizePressure(p, unit)
			require.NoError(t, err)
			back, err := FromKPa(kPa, unit)
			require.NoError(t, err)
			assert.InEpsilon(t, p, back, 1e-14, "%v %s", p, unit)
		}
	}
}

func TestNormalizePressureErrors(t *testing.T) {
	_, err := NormalizePressure(2, "psi")
	assert.True(t, merry.Is(err, ErrInvalidUnit))
	assert.Equal(t, "InvalidUnit", ErrorKind(err))
	v, ok := OffendingValue(err)
	assert.True(t, ok)
	assert.Equal(t, "psi", v)

	for _, p := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NormalizePressure(p, Bar)
		assert.True(t, merry.Is(err, ErrInvalidMagnitude), "%v", p)
	}

	_, err = FromKPa(100, "")
	assert.True(t, merry.Is(err, ErrInvalidUnit))
}

func TestParsePressureUnit(t *testing.T) {
	for s, unit := range map[string]PressureUnit{
		"Pa": Pa, "pa": Pa, "BAR": Bar, " atm ": Atm, "KPA": KPa,
	} {
		u, err := ParsePressureUnit(s)
		require.NoError(t, err, s)
		assert.Equal(t, unit, u, s)
	}
	_, err := ParsePressureUnit("mmHg")
	assert.True(t, merry.Is(err, ErrInvalidUnit))
}

func TestParsePressure(t *testing.T) {
	for _, c := range []struct {
		s    string
		v    float64
		unit PressureUnit
	}{
		{"2e5", 2e5, Pa},
		{"2 bar", 2, Bar},
		{"2bar", 2, Bar},
		{"1.5 atm", 1.5, Atm},
		{"1,5 ATM", 1.5, Atm},
		{"101.3 kPa", 101.3, KPa},
		{"350 Pa", 350, Pa},
		{"-5 bar", -5, Bar},
	} {
		v, unit, err := ParsePressure(c.s)
		require.NoError(t, err, c.s)
		assert.Equal(t, c.v, v, c.s)
		assert.Equal(t, c.unit, unit, c.s)
	}

	_, _, err := ParsePressure("two bar")
	assert.True(t, merry.Is(err, ErrInvalidMagnitude))
	_, _, err = ParsePressure("")
	assert.True(t, merry.Is(err, ErrInvalidMagnitude))
}

func TestParsePressureUnknownUnit(t *testing.T) {
	for _, s := range []string{"2 psi", "2psi", "1.5 mmHg", "bar2 torr"} {
		_, _, err := ParsePressure(s)
		assert.True(t, merry.Is(err, ErrInvalidUnit), s)
		assert.Equal(t, "InvalidUnit", ErrorKind(err), s)
	}
	_, _, err := ParsePressure("2 psi")
	v, _ := OffendingValue(err)
	assert.Equal(t, "psi", v)
}
