// Package api is the thrift interface of the property engine (api/ethprop.thrift):
// wire types, the PropertyService client and processor, and the handler serving them.
package api

import (
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

type CalcRequest struct {
	T    float64 `thrift:"t,1" json:"t"`
	P    float64 `thrift:"p,2" json:"p"`
	Unit string  `thrift:"unit,3" json:"unit"`
}

func NewCalcRequest() *CalcRequest {
	return &CalcRequest{}
}

func (p *CalcRequest) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("CalcRequest(%+v)", *p)
}

func (p *CalcRequest) Read(iprot thrift.TProtocol) error {
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && fieldType == thrift.DOUBLE:
			p.T, err = iprot.ReadDouble()
		case id == 2 && fieldType == thrift.DOUBLE:
			p.P, err = iprot.ReadDouble()
		case id == 3 && fieldType == thrift.STRING:
			p.Unit, err = iprot.ReadString()
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *CalcRequest) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "CalcRequest", func() error {
		if err := writeDouble(oprot, "t", 1, p.T); err != nil {
			return err
		}
		if err := writeDouble(oprot, "p", 2, p.P); err != nil {
			return err
		}
		return writeString(oprot, "unit", 3, p.Unit)
	})
}

type CalcResult struct {
	T         float64  `thrift:"t,1" json:"t"`
	P         float64  `thrift:"p,2" json:"p"`
	Unit      string   `thrift:"unit,3" json:"unit"`
	PKPa      float64  `thrift:"pKPa,4" json:"pKPa"`
	Tr        float64  `thrift:"tr,5" json:"tr"`
	Pr        float64  `thrift:"pr,6" json:"pr"`
	HIdeal    float64  `thrift:"hIdeal,7" json:"hIdeal"`
	SIdeal    float64  `thrift:"sIdeal,8" json:"sIdeal"`
	HResidual float64  `thrift:"hResidual,9" json:"hResidual"`
	SResidual float64  `thrift:"sResidual,10" json:"sResidual"`
	H         float64  `thrift:"h,11" json:"h"`
	S         float64  `thrift:"s,12" json:"s"`
	Warnings  []string `thrift:"warnings,13" json:"warnings"`
}

func NewCalcResult() *CalcResult {
	return &CalcResult{}
}

func (p *CalcResult) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("CalcResult(%+v)", *p)
}

func (p *CalcResult) doubles() []*float64 {
	return []*float64{
		4: &p.PKPa, 5: &p.Tr, 6: &p.Pr,
		7: &p.HIdeal, 8: &p.SIdeal, 9: &p.HResidual, 10: &p.SResidual,
		11: &p.H, 12: &p.S,
	}
}

var calcResultFieldNames = []string{
	4: "pKPa", 5: "tr", 6: "pr",
	7: "hIdeal", 8: "sIdeal", 9: "hResidual", 10: "sResidual",
	11: "h", 12: "s",
}

func (p *CalcResult) Read(iprot thrift.TProtocol) error {
	doubles := p.doubles()
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && fieldType == thrift.DOUBLE:
			p.T, err = iprot.ReadDouble()
		case id == 2 && fieldType == thrift.DOUBLE:
			p.P, err = iprot.ReadDouble()
		case id == 3 && fieldType == thrift.STRING:
			p.Unit, err = iprot.ReadString()
		case id >= 4 && id <= 12 && fieldType == thrift.DOUBLE:
			*doubles[id], err = iprot.ReadDouble()
		case id == 13 && fieldType == thrift.LIST:
			p.Warnings, err = readStringList(iprot)
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *CalcResult) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "CalcResult", func() error {
		if err := writeDouble(oprot, "t", 1, p.T); err != nil {
			return err
		}
		if err := writeDouble(oprot, "p", 2, p.P); err != nil {
			return err
		}
		if err := writeString(oprot, "unit", 3, p.Unit); err != nil {
			return err
		}
		doubles := p.doubles()
		for id := int16(4); id <= 12; id++ {
			if err := writeDouble(oprot, calcResultFieldNames[id], id, *doubles[id]); err != nil {
				return err
			}
		}
		return writeStringList(oprot, "warnings", 13, p.Warnings)
	})
}

type ReferenceInfo struct {
	Substance string  `thrift:"substance,1" json:"substance"`
	MolarMass float64 `thrift:"molarMass,2" json:"molarMass"`
	T0        float64 `thrift:"t0,3" json:"t0"`
	P0        float64 `thrift:"p0,4" json:"p0"`
	Tc        float64 `thrift:"tc,5" json:"tc"`
	Pc        float64 `thrift:"pc,6" json:"pc"`
	Omega     float64 `thrift:"omega,7" json:"omega"`
	CpA       float64 `thrift:"cpA,8" json:"cpA"`
	CpB       float64 `thrift:"cpB,9" json:"cpB"`
	CpC       float64 `thrift:"cpC,10" json:"cpC"`
}

func NewReferenceInfo() *ReferenceInfo {
	return &ReferenceInfo{}
}

func (p *ReferenceInfo) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("ReferenceInfo(%+v)", *p)
}

func (p *ReferenceInfo) doubles() []*float64 {
	return []*float64{2: &p.MolarMass, 3: &p.T0, 4: &p.P0, 5: &p.Tc, 6: &p.Pc, 7: &p.Omega,
		8: &p.CpA, 9: &p.CpB, 10: &p.CpC}
}

var referenceInfoFieldNames = []string{2: "molarMass", 3: "t0", 4: "p0", 5: "tc", 6: "pc", 7: "omega",
	8: "cpA", 9: "cpB", 10: "cpC"}

func (p *ReferenceInfo) Read(iprot thrift.TProtocol) error {
	doubles := p.doubles()
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && fieldType == thrift.STRING:
			p.Substance, err = iprot.ReadString()
		case id >= 2 && id <= 10 && fieldType == thrift.DOUBLE:
			*doubles[id], err = iprot.ReadDouble()
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *ReferenceInfo) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "ReferenceInfo", func() error {
		if err := writeString(oprot, "substance", 1, p.Substance); err != nil {
			return err
		}
		doubles := p.doubles()
		for id := int16(2); id <= 10; id++ {
			if err := writeDouble(oprot, referenceInfoFieldNames[id], id, *doubles[id]); err != nil {
				return err
			}
		}
		return nil
	})
}

// CalcError is returned by Calculate when the request fails validation. Kind is one of
// InvalidUnit, InvalidMagnitude, InvalidTemperature or InvalidReducedState; Value is the
// offending input formatted as text.
type CalcError struct {
	Kind    string `thrift:"kind,1" json:"kind"`
	Message string `thrift:"message,2" json:"message"`
	Value   string `thrift:"value,3" json:"value"`
}

func NewCalcError() *CalcError {
	return &CalcError{}
}

func (p *CalcError) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("CalcError(%+v)", *p)
}

func (p *CalcError) Error() string {
	return p.String()
}

func (p *CalcError) Read(iprot thrift.TProtocol) error {
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		if fieldType != thrift.STRING {
			return false, nil
		}
		var err error
		switch id {
		case 1:
			p.Kind, err = iprot.ReadString()
		case 2:
			p.Message, err = iprot.ReadString()
		case 3:
			p.Value, err = iprot.ReadString()
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *CalcError) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "CalcError", func() error {
		if err := writeString(oprot, "kind", 1, p.Kind); err != nil {
			return err
		}
		if err := writeString(oprot, "message", 2, p.Message); err != nil {
			return err
		}
		return writeString(oprot, "value", 3, p.Value)
	})
}

// readStruct reads fields until STOP. readField returns false for fields it does not
// know, which are skipped.
func readStruct(iprot thrift.TProtocol, p interface{}, readField func(id int16, fieldType thrift.TType) (bool, error)) error {
	if _, err := iprot.ReadStructBegin(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin()
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, id), err)
		}
		if fieldType == thrift.STOP {
			break
		}
		ok, err := readField(id, fieldType)
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, id), err)
		}
		if !ok {
			if err := iprot.Skip(fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := iprot.ReadStructEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func writeStruct(oprot thrift.TProtocol, name string, writeFields func() error) error {
	if err := oprot.WriteStructBegin(name); err != nil {
		return thrift.PrependError(fmt.Sprintf("%s write struct begin error: ", name), err)
	}
	if err := writeFields(); err != nil {
		return err
	}
	if err := oprot.WriteFieldStop(); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func writeField(oprot thrift.TProtocol, name string, fieldType thrift.TType, id int16, write func() error) error {
	if err := oprot.WriteFieldBegin(name, fieldType, id); err != nil {
		return thrift.PrependError(fmt.Sprintf("write field begin error %d:%s: ", id, name), err)
	}
	if err := write(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%d:%s field write error: ", id, name), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("write field end error %d:%s: ", id, name), err)
	}
	return nil
}

func writeDouble(oprot thrift.TProtocol, name string, id int16, v float64) error {
	return writeField(oprot, name, thrift.DOUBLE, id, func() error {
		return oprot.WriteDouble(v)
	})
}

func writeString(oprot thrift.TProtocol, name string, id int16, v string) error {
	return writeField(oprot, name, thrift.STRING, id, func() error {
		return oprot.WriteString(v)
	})
}

func writeStringList(oprot thrift.TProtocol, name string, id int16, xs []string) error {
	return writeField(oprot, name, thrift.LIST, id, func() error {
		if err := oprot.WriteListBegin(thrift.STRING, len(xs)); err != nil {
			return err
		}
		for _, s := range xs {
			if err := oprot.WriteString(s); err != nil {
				return err
			}
		}
		return oprot.WriteListEnd()
	})
}

func readStringList(iprot thrift.TProtocol) ([]string, error) {
	_, size, err := iprot.ReadListBegin()
	if err != nil {
		return nil, err
	}
	xs := make([]string, 0, size)
	for i := 0; i < size; i++ {
		s, err := iprot.ReadString()
		if err != nil {
			return nil, err
		}
		xs = append(xs, s)
	}
	return xs, iprot.ReadListEnd()
}
