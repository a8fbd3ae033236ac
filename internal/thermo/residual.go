package thermo

import (
	"math"
)

// virialTerm is one generalized second-virial function of reduced temperature:
//   B(Tr) = a − b / Tr^n,   dB/dTr = n·b / Tr^(n+1)
type virialTerm struct {
	a, b, n float64
}

func (v virialTerm) value(Tr float64) float64 {
	return v.a - v.b/math.Pow(Tr, v.n)
}

func (v virialTerm) deriv(Tr float64) float64 {
	return v.n * v.b / math.Pow(Tr, v.n+1)
}

// Abbott correlation for the simple fluid (B0) and the acentric deviation (B1).
var (
	simpleFluid = virialTerm{a: 0.083, b: 0.422, n: 1.6}
	deviation   = virialTerm{a: 0.139, b: 0.172, n: 4.2}
)

// B0 computes the simple-fluid term B·Pc/(R·Tc) at Tr
func B0(Tr float64) float64 { return simpleFluid.value(Tr) }

// B1 computes the acentric deviation term at Tr
func B1(Tr float64) float64 { return deviation.value(Tr) }

// DB0dTr computes dB0/dTr
func DB0dTr(Tr float64) float64 { return simpleFluid.deriv(Tr) }

// DB1dTr computes dB1/dTr
func DB1dTr(Tr float64) float64 { return deviation.deriv(Tr) }

// ReducedState holds T and P divided by the critical constants.
type ReducedState struct {
	Tr, Pr float64
}

// Reduce computes Tr and Pr for T [K] and P [kPa].
func (x *Engine) Reduce(T, P float64) (ReducedState, error) {
	r := ReducedState{Tr: T / x.substance.Tc, Pr: P / x.substance.Pc}
	if !isFinite(r.Tr) || r.Tr <= 0 {
		return r, invalid(ErrInvalidReducedState, r.Tr, "Tr=%v: must be finite and positive", r.Tr)
	}
	if !isFinite(r.Pr) || r.Pr <= 0 {
		return r, invalid(ErrInvalidReducedState, r.Pr, "Pr=%v: must be finite and positive", r.Pr)
	}
	return r, nil
}

// Residual computes the residual enthalpy [J/mol] and entropy [J/(mol·K)] at T [K] and
// P [kPa]:
//   H_R / (R·Tc) = Pr·[(B0 − Tr·B0′) + ω·(B1 − Tr·B1′)]
//   S_R / R      = −Pr·[B0′ + ω·B1′]
func (x *Engine) Residual(T, P float64) (H, S float64, err error) {
	r, err := x.Reduce(T, P)
	if err != nil {
		return 0, 0, err
	}
	H, S = x.residual(r)
	return H, S, nil
}

func (x *Engine) residual(r ReducedState) (H, S float64) {
	c := x.substance
	d0, d1 := DB0dTr(r.Tr), DB1dTr(r.Tr)
	H = R * c.Tc * r.Pr * ((B0(r.Tr) - r.Tr*d0) + c.Omega*(B1(r.Tr)-r.Tr*d1))
	S = -R * r.Pr * (d0 + c.Omega*d1)
	return
}
