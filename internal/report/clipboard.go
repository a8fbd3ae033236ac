package report

import (
	"fmt"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/thermo"
)

// Field names one value of a result record.
type Field string

const (
	FieldT         Field = "T"
	FieldP         Field = "P"
	FieldHIdeal    Field = "H_ig"
	FieldSIdeal    Field = "S_ig"
	FieldHResidual Field = "H_R"
	FieldSResidual Field = "S_R"
	FieldH         Field = "H_total"
	FieldS         Field = "S_total"
)

var Fields = []Field{FieldT, FieldP, FieldHIdeal, FieldSIdeal, FieldHResidual, FieldSResidual, FieldH, FieldS}

// ParseField checks that s names one of Fields.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", merry.Errorf("unknown field %q, expected one of %v", s, Fields)
}

func (f Field) Value(r thermo.Result) (float64, error) {
	switch f {
	case FieldT:
		return r.T, nil
	case FieldP:
		return r.P, nil
	case FieldHIdeal:
		return r.HIdeal, nil
	case FieldSIdeal:
		return r.SIdeal, nil
	case FieldHResidual:
		return r.HResidual, nil
	case FieldSResidual:
		return r.SResidual, nil
	case FieldH:
		return r.H, nil
	case FieldS:
		return r.S, nil
	default:
		return 0, merry.Errorf("unknown field %q", f)
	}
}

// CopyValue returns the clipboard text for one field: the shortest representation that
// parses back to the same float64.
func CopyValue(r thermo.Result, f Field) (string, error) {
	v, err := f.Value(r)
	if err != nil {
		return "", err
	}
	return formatExact(v), nil
}

// CopyRow returns "name\tvalue" for one field.
func CopyRow(r thermo.Result, f Field) (string, error) {
	s, err := CopyValue(r, f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\t%s", f, s), nil
}
