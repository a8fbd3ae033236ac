// Package thermo computes enthalpy and entropy of a pure gas relative to a reference
// state: closed-form integration of the ideal-gas heat capacity plus residual terms
// from the generalized virial (Pitzer/Abbott) correlation.
//
// An Engine holds only immutable constants. Calculate is a pure function of its
// request and may be called from any number of goroutines.
package thermo

import (
	"github.com/ansel1/merry"
)

type Engine struct {
	substance Substance
	reference ReferenceState
	validity  Validity
}

// Request is one state point as entered by a user.
type Request struct {
	T    float64      `json:"t"`    // K
	P    float64      `json:"p"`    // in Unit
	Unit PressureUnit `json:"unit"` // Pa, kPa, bar or atm
}

// Result carries the ideal and residual split as well as the totals.
// Enthalpy in J/mol, entropy in J/(mol·K), both relative to the reference state.
type Result struct {
	T           float64      `json:"t"`
	P           float64      `json:"p"`
	Unit        PressureUnit `json:"unit"`
	PressureKPa float64      `json:"p_kpa"`
	Tr          float64      `json:"tr"`
	Pr          float64      `json:"pr"`

	HIdeal    float64 `json:"h_ig"`
	SIdeal    float64 `json:"s_ig"`
	HResidual float64 `json:"h_r"`
	SResidual float64 `json:"s_r"`
	H         float64 `json:"h"`
	S         float64 `json:"s"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// New creates an engine for the substance and reference state.
func New(substance Substance, reference ReferenceState, validity Validity) (*Engine, error) {
	if err := substance.Validate(); err != nil {
		return nil, err
	}
	if err := reference.Validate(); err != nil {
		return nil, err
	}
	if err := validity.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		substance: substance,
		reference: reference,
		validity:  validity,
	}, nil
}

// NewEthane creates an engine with the compiled-in ethane constants.
func NewEthane() *Engine {
	x, err := New(Ethane(), StandardReference(), DefaultValidity())
	if err != nil {
		panic(merry.Prepend(err, "ethane constants"))
	}
	return x
}

func (x *Engine) Substance() Substance { return x.substance }

func (x *Engine) Reference() ReferenceState { return x.reference }

func (x *Engine) Validity() Validity { return x.validity }

// Calculate normalizes the pressure of r and evaluates the ideal-gas and residual
// contributions. It returns either a complete result or one validation error.
func (x *Engine) Calculate(r Request) (Result, error) {
	if err := checkTemperature(r.T); err != nil {
		return Result{}, err
	}
	P, err := NormalizePressure(r.P, r.Unit)
	if err != nil {
		return Result{}, err
	}
	red, err := x.Reduce(r.T, P)
	if err != nil {
		return Result{}, err
	}
	hr, sr := x.residual(red)
	if !isFinite(hr) || !isFinite(sr) {
		return Result{}, invalid(ErrInvalidReducedState, red.Tr,
			"Tr=%v, Pr=%v: residual terms are not finite", red.Tr, red.Pr)
	}
	res := Result{
		T:           r.T,
		P:           r.P,
		Unit:        r.Unit,
		PressureKPa: P,
		Tr:          red.Tr,
		Pr:          red.Pr,
		HIdeal:      x.idealEnthalpy(r.T),
		SIdeal:      x.idealEntropy(r.T, P),
		HResidual:   hr,
		SResidual:   sr,
		Warnings:    x.validity.check(r.T, red),
	}
	res.H = res.HIdeal + res.HResidual
	res.S = res.SIdeal + res.SResidual
	if !res.finite() {
		return Result{}, invalid(ErrInvalidTemperature, r.T,
			"T=%v K, P=%v kPa: ideal-gas terms are not finite", r.T, P)
	}
	return res, nil
}

func (x Result) finite() bool {
	for _, v := range []float64{x.HIdeal, x.SIdeal, x.HResidual, x.SResidual, x.H, x.S} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// HasWarning reports whether the result was flagged with w.
func (x Result) HasWarning(w Warning) bool {
	for _, a := range x.Warnings {
		if a == w {
			return true
		}
	}
	return false
}
