package config

import (
	"github.com/ansel1/merry"
)

// Basis selects the units of reported enthalpy and entropy.
type Basis string

const (
	Molar Basis = "molar" // J/mol, J/(mol·K)
	Mass  Basis = "mass"  // kJ/kg, kJ/(kg·K)
)

func (c Basis) Validate() error {
	switch c {
	case Molar, Mass:
		return nil
	default:
		return merry.Errorf("output: wrong basis %q: expected %q or %q", c, Molar, Mass)
	}
}

type Output struct {
	FloatPrecision int       `yaml:"float_precision"`
	Basis          Basis     `yaml:"basis"`
	Tabulated      Tabulated `yaml:"tabulated"`
}

// Tabulated adds fixed reference values to mass-basis output so that reported numbers
// line up with tabulated absolute properties.
type Tabulated struct {
	Enable bool    `yaml:"enable"`
	H0     float64 `yaml:"h0"` // kJ/kg at the reference state
	S0     float64 `yaml:"s0"` // kJ/(kg·K) at the reference state
}

func (c Output) Validate() error {
	if c.FloatPrecision < 0 || c.FloatPrecision > 17 {
		return merry.Errorf("output: wrong float_precision=%d: must be in 0..17", c.FloatPrecision)
	}
	if err := c.Basis.Validate(); err != nil {
		return err
	}
	if c.Tabulated.Enable && c.Basis != Mass {
		return merry.New("output: tabulated reference values require the mass basis")
	}
	return nil
}
