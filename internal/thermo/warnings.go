package thermo

import (
	"fmt"
	"math"

	"github.com/ansel1/merry"
)

// Warning marks a result computed outside the range where the correlations hold.
// Such results are still returned; accuracy is degraded.
type Warning string

const (
	WarnHeatCapacityRange   Warning = "heat_capacity_range"
	WarnNearCritical        Warning = "near_critical"
	WarnHighReducedPressure Warning = "high_reduced_pressure"
	WarnOutsideVirialRegion Warning = "outside_virial_region"
)

func (w Warning) String() string {
	switch w {
	case WarnHeatCapacityRange:
		return "temperature is outside the fitted range of the heat capacity polynomial"
	case WarnNearCritical:
		return "reduced temperature is close to 1: residual terms are extrapolated"
	case WarnHighReducedPressure:
		return "reduced pressure is not below 1: residual terms are extrapolated"
	case WarnOutsideVirialRegion:
		return "state is outside the two-term virial region (Tr < 0.686 + 0.439·Pr)"
	default:
		return string(w)
	}
}

// Validity bounds the region where results are reported without warnings.
type Validity struct {
	TMin, TMax       float64 // K, heat capacity fit range
	NearCriticalBand float64 // |Tr − 1| below this warns
	MaxPr            float64 // Pr at or above this warns
}

func DefaultValidity() Validity {
	return Validity{
		TMin:             298,
		TMax:             1500,
		NearCriticalBand: 0.05,
		MaxPr:            1,
	}
}

func (v Validity) Validate() error {
	if !isFinite(v.TMin) || !isFinite(v.TMax) || v.TMin <= 0 || v.TMax <= v.TMin {
		return merry.Errorf("heat capacity range [%v, %v] K: must satisfy 0 < TMin < TMax", v.TMin, v.TMax)
	}
	if !isFinite(v.NearCriticalBand) || v.NearCriticalBand < 0 {
		return merry.Errorf("near critical band %v: must not be negative", v.NearCriticalBand)
	}
	if !isFinite(v.MaxPr) || v.MaxPr <= 0 {
		return merry.Errorf("reduced pressure limit %v: must be positive", v.MaxPr)
	}
	return nil
}

func (v Validity) check(T float64, r ReducedState) (ws []Warning) {
	if T < v.TMin || T > v.TMax {
		ws = append(ws, WarnHeatCapacityRange)
	}
	if math.Abs(r.Tr-1) < v.NearCriticalBand {
		ws = append(ws, WarnNearCritical)
	}
	if r.Pr >= v.MaxPr {
		ws = append(ws, WarnHighReducedPressure)
	}
	if r.Tr < 0.686+0.439*r.Pr {
		ws = append(ws, WarnOutsideVirialRegion)
	}
	return
}

// FormatWarnings joins warning descriptions for display.
func FormatWarnings(ws []Warning) string {
	s := ""
	for i, w := range ws {
		if i > 0 {
			s += "; "
		}
		s += fmt.Sprint(w)
	}
	return s
}
