package thermo

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// PressureUnit tags a user supplied pressure value.
type PressureUnit string

const (
	Pa  PressureUnit = "Pa"
	KPa PressureUnit = "kPa"
	Bar PressureUnit = "bar"
	Atm PressureUnit = "atm"
)

// kPa per unit
var pressureFactors = map[PressureUnit]float64{
	Pa:  0.001,
	KPa: 1,
	Bar: 100,
	Atm: 101.325,
}

// PressureUnits lists accepted units in the order they are offered to users.
var PressureUnits = []PressureUnit{Pa, Bar, Atm, KPa}

// ParsePressureUnit accepts a unit tag in any letter case. Besides Pa, bar and atm it
// accepts kPa, the unit results are normalized to.
func ParsePressureUnit(s string) (PressureUnit, error) {
	s = strings.TrimSpace(s)
	for _, u := range PressureUnits {
		if strings.EqualFold(s, string(u)) {
			return u, nil
		}
	}
	return "", invalid(ErrInvalidUnit, s, "%q: expected one of Pa, kPa, bar, atm", s)
}

func (u PressureUnit) Validate() error {
	if _, ok := pressureFactors[u]; !ok {
		return invalid(ErrInvalidUnit, string(u), "%q: expected one of Pa, kPa, bar, atm", string(u))
	}
	return nil
}

// NormalizePressure converts p given in unit to kPa.
func NormalizePressure(p float64, unit PressureUnit) (float64, error) {
	factor, ok := pressureFactors[unit]
	if !ok {
		return 0, invalid(ErrInvalidUnit, string(unit), "%q: expected one of Pa, kPa, bar, atm", string(unit))
	}
	if !isFinite(p) || p <= 0 {
		return 0, invalid(ErrInvalidMagnitude, p, "P=%v %s: must be finite and positive", p, unit)
	}
	return p * factor, nil
}

// FromKPa converts a pressure in kPa back to unit.
func FromKPa(kPa float64, unit PressureUnit) (float64, error) {
	factor, ok := pressureFactors[unit]
	if !ok {
		return 0, invalid(ErrInvalidUnit, string(unit), "%q: expected one of Pa, kPa, bar, atm", string(unit))
	}
	if !isFinite(kPa) || kPa <= 0 {
		return 0, invalid(ErrInvalidMagnitude, kPa, "P=%v kPa: must be finite and positive", kPa)
	}
	return kPa / factor, nil
}

// ParsePressure reads strings like "2e5", "2 bar", "1.5 atm" or "101.3 kPa".
// A value without a unit suffix is taken in Pa. Decimal commas are accepted.
// An unknown suffix is an InvalidUnit error, an unreadable number InvalidMagnitude.
func ParsePressure(s string) (float64, PressureUnit, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	strV, suffix := strings.TrimSpace(s[:i+1]), s[i+1:]
	unit := Pa
	if suffix != "" {
		u, err := ParsePressureUnit(suffix)
		if err != nil {
			return 0, "", err
		}
		unit = u
	}
	v, err := strconv.ParseFloat(strings.Replace(strV, ",", ".", -1), 64)
	if err != nil {
		return 0, "", invalid(ErrInvalidMagnitude, strV,
			"%q: invalid pressure format, use '2e5', '2 bar' or '1.5 atm'", s)
	}
	return v, unit, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
