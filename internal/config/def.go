package config

import (
	"os"
	"path/filepath"

	"github.com/fpawel/ethprop/internal/thermo"
)

func defaultConfig() Config {
	ethane := thermo.Ethane()
	ref := thermo.StandardReference()
	v := thermo.DefaultValidity()
	return Config{
		Reference: Reference{
			T0: ref.T0,
			P0: ref.P0,
		},
		Substance: Substance{
			Name:      ethane.Name,
			MolarMass: ethane.MolarMass,
			CpA:       thermo.EthaneCpA,
			CpB:       thermo.EthaneCpB,
			CpC:       thermo.EthaneCpC,
			Tc:        ethane.Tc,
			Pc:        ethane.Pc,
			Omega:     ethane.Omega,
		},
		Validity: Validity{
			TMin:             v.TMin,
			TMax:             v.TMax,
			NearCriticalBand: v.NearCriticalBand,
			MaxPr:            v.MaxPr,
		},
		Output: Output{
			FloatPrecision: 5,
			Basis:          Mass,
			Tabulated: Tabulated{
				Enable: false,
				H0:     1068.3,
				S0:     7.634,
			},
		},
		Database: filepath.Join(filepath.Dir(os.Args[0]), "ethprop.sqlite"),
		Api:      Net{Addr: "127.0.0.1:9091"},
		Ws:       Net{Addr: "127.0.0.1:9000"},
	}
}
