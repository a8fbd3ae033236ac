package config

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/thermo"
)

// Substance holds the constants of the gas. Heat capacity coefficients are given as
// Cp/R = CpA + CpB·T + CpC·T².
type Substance struct {
	Name      string  `yaml:"name"`
	MolarMass float64 `yaml:"molar_mass"` // g/mol
	CpA       float64 `yaml:"cp_a"`
	CpB       float64 `yaml:"cp_b"`
	CpC       float64 `yaml:"cp_c"`
	Tc        float64 `yaml:"tc"`    // K
	Pc        float64 `yaml:"pc"`    // kPa
	Omega     float64 `yaml:"omega"` // acentric factor
}

func (c Substance) Thermo() thermo.Substance {
	x := thermo.Substance{
		Name:      c.Name,
		MolarMass: c.MolarMass,
		Tc:        c.Tc,
		Pc:        c.Pc,
		Omega:     c.Omega,
	}
	x.A, x.B, x.C = thermo.HeatCapacity(c.CpA, c.CpB, c.CpC)
	return x
}

func (c Substance) Validate() error {
	if len(c.Name) == 0 {
		return merry.New("substance: name must be set")
	}
	return merry.Prepend(c.Thermo().Validate(), "substance")
}

type Reference struct {
	T0 float64 `yaml:"t0"` // K
	P0 float64 `yaml:"p0"` // kPa
}

func (c Reference) Thermo() thermo.ReferenceState {
	return thermo.ReferenceState{T0: c.T0, P0: c.P0}
}

func (c Reference) Validate() error {
	return c.Thermo().Validate()
}

type Validity struct {
	TMin             float64 `yaml:"t_min"` // K
	TMax             float64 `yaml:"t_max"` // K
	NearCriticalBand float64 `yaml:"near_critical_band"`
	MaxPr            float64 `yaml:"max_pr"`
}

func (c Validity) Thermo() thermo.Validity {
	return thermo.Validity{
		TMin:             c.TMin,
		TMax:             c.TMax,
		NearCriticalBand: c.NearCriticalBand,
		MaxPr:            c.MaxPr,
	}
}

func (c Validity) Validate() error {
	return c.Thermo().Validate()
}
