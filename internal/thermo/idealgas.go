package thermo

import (
	"math"
)

// IdealGas integrates Cp_ig from T0 to T in closed form and returns the ideal-gas
// enthalpy [J/mol] and entropy [J/(mol·K)] relative to the reference state.
// P is in kPa.
func (x *Engine) IdealGas(T, P float64) (H, S float64, err error) {
	if err = checkTemperature(T); err != nil {
		return
	}
	if !isFinite(P) || P <= 0 {
		err = invalid(ErrInvalidMagnitude, P, "P=%v kPa: must be finite and positive", P)
		return
	}
	H = x.idealEnthalpy(T)
	S = x.idealEntropy(T, P)
	return
}

func (x *Engine) idealEnthalpy(T float64) float64 {
	c, T0 := x.substance, x.reference.T0
	return c.A*(T-T0) +
		(c.B/2)*(T*T-T0*T0) +
		(c.C/3)*(T*T*T-T0*T0*T0)
}

// ∫ Cp/T dT − R ln(P/P0)
func (x *Engine) idealEntropy(T, P float64) float64 {
	c, T0, P0 := x.substance, x.reference.T0, x.reference.P0
	return c.A*math.Log(T/T0) +
		c.B*(T-T0) +
		(c.C/2)*(T*T-T0*T0) -
		R*math.Log(P/P0)
}

func checkTemperature(T float64) error {
	if !isFinite(T) || T <= 0 {
		return invalid(ErrInvalidTemperature, T, "T=%v K: must be finite and above absolute zero", T)
	}
	return nil
}
