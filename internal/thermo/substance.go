package thermo

import (
	"github.com/ansel1/merry"
)

// R is the universal gas constant, J/(mol·K).
const R = 8.31446261815324

// Substance holds the constants of one pure substance. It is passed by value,
// so an Engine never observes later changes made to the caller's copy.
type Substance struct {
	Name      string
	MolarMass float64 // g/mol

	// Cp_ig(T) = A + B·T + C·T², J/(mol·K)
	A, B, C float64

	Tc    float64 // K
	Pc    float64 // kPa
	Omega float64 // acentric factor
}

// ReferenceState is the zero point of reported enthalpy and entropy.
type ReferenceState struct {
	T0 float64 // K
	P0 float64 // kPa
}

// Cp/R coefficients of ethane, fitted for 298..1500 K.
const (
	EthaneCpA = 1.131
	EthaneCpB = 19.225e-3
	EthaneCpC = -5.561e-6
)

// Ethane returns the compiled-in constants for ethane.
func Ethane() Substance {
	x := Substance{
		Name:      "ethane",
		MolarMass: 30.069,
		Tc:        305.3,
		Pc:        4900,
		Omega:     0.100,
	}
	x.A, x.B, x.C = HeatCapacity(EthaneCpA, EthaneCpB, EthaneCpC)
	return x
}

// HeatCapacity converts the coefficients of Cp/R = a + b·T + c·T² to J/(mol·K).
// Compiled-in and configured constants both go through it.
func HeatCapacity(a, b, c float64) (A, B, C float64) {
	return a * R, b * R, c * R
}

// StandardReference returns T0 = 300 K, P0 = 101.3 kPa.
func StandardReference() ReferenceState {
	return ReferenceState{T0: 300, P0: 101.3}
}

// Cp evaluates the ideal-gas heat capacity at T.
func (x Substance) Cp(T float64) float64 {
	return x.A + x.B*T + x.C*T*T
}

func (x Substance) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"A", x.A}, {"B", x.B}, {"C", x.C}, {"omega", x.Omega},
	} {
		if !isFinite(p.v) {
			return merry.Errorf("%s: %s=%v must be finite", x.Name, p.name, p.v)
		}
	}
	if !isFinite(x.Tc) || x.Tc <= 0 {
		return merry.Errorf("%s: Tc=%v K must be positive", x.Name, x.Tc)
	}
	if !isFinite(x.Pc) || x.Pc <= 0 {
		return merry.Errorf("%s: Pc=%v kPa must be positive", x.Name, x.Pc)
	}
	if !isFinite(x.MolarMass) || x.MolarMass < 0 {
		return merry.Errorf("%s: molar mass=%v g/mol must not be negative", x.Name, x.MolarMass)
	}
	return nil
}

func (x ReferenceState) Validate() error {
	if !isFinite(x.T0) || x.T0 <= 0 {
		return merry.Errorf("reference temperature T0=%v K must be positive", x.T0)
	}
	if !isFinite(x.P0) || x.P0 <= 0 {
		return merry.Errorf("reference pressure P0=%v kPa must be positive", x.P0)
	}
	return nil
}
