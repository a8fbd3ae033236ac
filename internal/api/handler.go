package api

import (
	"context"
	"fmt"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/powerman/structlog"
)

// Handler serves PropertyService with an engine. Every successful result is passed to
// Sink when it is set.
type Handler struct {
	Engine *thermo.Engine
	Sink   func(thermo.Result) error
	Log    *structlog.Logger
}

var _ PropertyService = new(Handler)

func (h *Handler) Calculate(_ context.Context, req *CalcRequest) (*CalcResult, error) {
	if req == nil {
		req = NewCalcRequest()
	}
	unit, err := thermo.ParsePressureUnit(req.Unit)
	if err != nil {
		return nil, NewCalcErrorFrom(err)
	}
	r, err := h.Engine.Calculate(thermo.Request{T: req.T, P: req.P, Unit: unit})
	if err != nil {
		h.log().PrintErr(err, "t", req.T, "p", req.P, "unit", req.Unit)
		return nil, NewCalcErrorFrom(err)
	}
	for _, w := range r.Warnings {
		h.log().Warn(w.String(), "t", r.T, "p", r.P, "unit", r.Unit)
	}
	if h.Sink != nil {
		if err := h.Sink(r); err != nil {
			return nil, err
		}
	}
	return NewCalcResultFrom(r), nil
}

func (h *Handler) Reference(context.Context) (*ReferenceInfo, error) {
	return NewReferenceInfoFrom(h.Engine), nil
}

func (h *Handler) log() *structlog.Logger {
	if h.Log == nil {
		return defaultLog
	}
	return h.Log
}

var defaultLog = pkg.NewLogger("api")

func NewCalcResultFrom(r thermo.Result) *CalcResult {
	x := &CalcResult{
		T:         r.T,
		P:         r.P,
		Unit:      string(r.Unit),
		PKPa:      r.PressureKPa,
		Tr:        r.Tr,
		Pr:        r.Pr,
		HIdeal:    r.HIdeal,
		SIdeal:    r.SIdeal,
		HResidual: r.HResidual,
		SResidual: r.SResidual,
		H:         r.H,
		S:         r.S,
		Warnings:  []string{},
	}
	for _, w := range r.Warnings {
		x.Warnings = append(x.Warnings, string(w))
	}
	return x
}

// Thermo converts the wire result back to the engine record.
func (p *CalcResult) Thermo() thermo.Result {
	r := thermo.Result{
		T:           p.T,
		P:           p.P,
		Unit:        thermo.PressureUnit(p.Unit),
		PressureKPa: p.PKPa,
		Tr:          p.Tr,
		Pr:          p.Pr,
		HIdeal:      p.HIdeal,
		SIdeal:      p.SIdeal,
		HResidual:   p.HResidual,
		SResidual:   p.SResidual,
		H:           p.H,
		S:           p.S,
	}
	for _, w := range p.Warnings {
		r.Warnings = append(r.Warnings, thermo.Warning(w))
	}
	return r
}

func NewReferenceInfoFrom(e *thermo.Engine) *ReferenceInfo {
	sub, ref := e.Substance(), e.Reference()
	return &ReferenceInfo{
		Substance: sub.Name,
		MolarMass: sub.MolarMass,
		T0:        ref.T0,
		P0:        ref.P0,
		Tc:        sub.Tc,
		Pc:        sub.Pc,
		Omega:     sub.Omega,
		CpA:       sub.A,
		CpB:       sub.B,
		CpC:       sub.C,
	}
}

func NewCalcErrorFrom(err error) *CalcError {
	x := &CalcError{
		Kind:    thermo.ErrorKind(err),
		Message: err.Error(),
	}
	if v, ok := thermo.OffendingValue(err); ok {
		x.Value = fmt.Sprint(v)
	}
	return x
}

// Thermo converts the wire error back to an error matching the engine's sentinel
// of the same kind.
func (p *CalcError) Thermo() error {
	kind := thermo.ErrorOfKind(p.Kind)
	if kind == nil {
		return merry.New(p.Message)
	}
	return merry.WithMessage(kind, p.Message).WithValue("value", p.Value)
}
