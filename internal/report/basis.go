package report

import (
	"github.com/fpawel/ethprop/internal/config"
	"github.com/fpawel/ethprop/internal/thermo"
)

// Properties is a result converted to the display basis.
type Properties struct {
	HIdeal, SIdeal       float64
	HResidual, SResidual float64
	H, S                 float64
	HUnit, SUnit         string
}

// Converter turns engine output (J/mol) into the configured display basis.
type Converter struct {
	Output    config.Output
	MolarMass float64 // g/mol
}

func (x Converter) Convert(r thermo.Result) Properties {
	p := Properties{
		HIdeal:    r.HIdeal,
		SIdeal:    r.SIdeal,
		HResidual: r.HResidual,
		SResidual: r.SResidual,
		H:         r.H,
		S:         r.S,
		HUnit:     "J/mol",
		SUnit:     "J/(mol·K)",
	}
	if x.Output.Basis != config.Mass || x.MolarMass <= 0 {
		return p
	}
	// J/mol divided by g/mol is J/g, which is kJ/kg
	for _, v := range []*float64{&p.HIdeal, &p.SIdeal, &p.HResidual, &p.SResidual, &p.H, &p.S} {
		*v /= x.MolarMass
	}
	p.HUnit, p.SUnit = "kJ/kg", "kJ/(kg·K)"
	// the offsets shift the ideal-gas part, so H = HIdeal + HResidual still holds
	if x.Output.Tabulated.Enable {
		p.HIdeal += x.Output.Tabulated.H0
		p.SIdeal += x.Output.Tabulated.S0
		p.H = p.HIdeal + p.HResidual
		p.S = p.SIdeal + p.SResidual
	}
	return p
}
