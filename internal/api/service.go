package api

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

type PropertyService interface {
	// Parameters:
	//  - Req
	Calculate(ctx context.Context, req *CalcRequest) (*CalcResult, error)
	Reference(ctx context.Context) (*ReferenceInfo, error)
}

type PropertyServiceClient struct {
	c thrift.TClient
}

func NewPropertyServiceClientFactory(t thrift.TTransport, f thrift.TProtocolFactory) *PropertyServiceClient {
	return &PropertyServiceClient{
		c: thrift.NewTStandardClient(f.GetProtocol(t), f.GetProtocol(t)),
	}
}

func NewPropertyServiceClient(c thrift.TClient) *PropertyServiceClient {
	return &PropertyServiceClient{c: c}
}

func (p *PropertyServiceClient) Client_() thrift.TClient {
	return p.c
}

func (p *PropertyServiceClient) Calculate(ctx context.Context, req *CalcRequest) (*CalcResult, error) {
	args := PropertyServiceCalculateArgs{Req: req}
	var result PropertyServiceCalculateResult
	if err := p.Client_().Call(ctx, "Calculate", &args, &result); err != nil {
		return nil, err
	}
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Success == nil {
		return nil, thrift.NewTApplicationException(thrift.MISSING_RESULT, "Calculate failed: unknown result")
	}
	return result.Success, nil
}

func (p *PropertyServiceClient) Reference(ctx context.Context) (*ReferenceInfo, error) {
	var args PropertyServiceReferenceArgs
	var result PropertyServiceReferenceResult
	if err := p.Client_().Call(ctx, "Reference", &args, &result); err != nil {
		return nil, err
	}
	if result.Success == nil {
		return nil, thrift.NewTApplicationException(thrift.MISSING_RESULT, "Reference failed: unknown result")
	}
	return result.Success, nil
}

type PropertyServiceProcessor struct {
	processorMap map[string]thrift.TProcessorFunction
	handler      PropertyService
}

func NewPropertyServiceProcessor(handler PropertyService) *PropertyServiceProcessor {
	x := &PropertyServiceProcessor{
		handler:      handler,
		processorMap: make(map[string]thrift.TProcessorFunction),
	}
	x.processorMap["Calculate"] = &propertyServiceProcessorCalculate{handler: handler}
	x.processorMap["Reference"] = &propertyServiceProcessorReference{handler: handler}
	return x
}

func (p *PropertyServiceProcessor) GetProcessorFunction(key string) (thrift.TProcessorFunction, bool) {
	f, ok := p.processorMap[key]
	return f, ok
}

func (p *PropertyServiceProcessor) Process(ctx context.Context, iprot, oprot thrift.TProtocol) (bool, thrift.TException) {
	name, _, seqID, err := iprot.ReadMessageBegin()
	if err != nil {
		return false, err
	}
	if f, ok := p.GetProcessorFunction(name); ok {
		return f.Process(ctx, seqID, iprot, oprot)
	}
	_ = iprot.Skip(thrift.STRUCT)
	_ = iprot.ReadMessageEnd()
	x := thrift.NewTApplicationException(thrift.UNKNOWN_METHOD, "Unknown function "+name)
	writeException(ctx, oprot, name, seqID, x)
	return false, x
}

type propertyServiceProcessorCalculate struct {
	handler PropertyService
}

func (p *propertyServiceProcessorCalculate) Process(ctx context.Context, seqID int32, iprot, oprot thrift.TProtocol) (bool, thrift.TException) {
	var args PropertyServiceCalculateArgs
	if err := args.Read(iprot); err != nil {
		_ = iprot.ReadMessageEnd()
		x := thrift.NewTApplicationException(thrift.PROTOCOL_ERROR, err.Error())
		writeException(ctx, oprot, "Calculate", seqID, x)
		return false, err
	}
	_ = iprot.ReadMessageEnd()

	var result PropertyServiceCalculateResult
	r, err := p.handler.Calculate(ctx, args.Req)
	if err != nil {
		v, ok := err.(*CalcError)
		if !ok {
			x := thrift.NewTApplicationException(thrift.INTERNAL_ERROR,
				"Internal error processing Calculate: "+err.Error())
			writeException(ctx, oprot, "Calculate", seqID, x)
			return true, err
		}
		result.Err = v
	} else {
		result.Success = r
	}
	return writeReply(ctx, oprot, "Calculate", seqID, &result)
}

type propertyServiceProcessorReference struct {
	handler PropertyService
}

func (p *propertyServiceProcessorReference) Process(ctx context.Context, seqID int32, iprot, oprot thrift.TProtocol) (bool, thrift.TException) {
	var args PropertyServiceReferenceArgs
	if err := args.Read(iprot); err != nil {
		_ = iprot.ReadMessageEnd()
		x := thrift.NewTApplicationException(thrift.PROTOCOL_ERROR, err.Error())
		writeException(ctx, oprot, "Reference", seqID, x)
		return false, err
	}
	_ = iprot.ReadMessageEnd()

	r, err := p.handler.Reference(ctx)
	if err != nil {
		x := thrift.NewTApplicationException(thrift.INTERNAL_ERROR,
			"Internal error processing Reference: "+err.Error())
		writeException(ctx, oprot, "Reference", seqID, x)
		return true, err
	}
	return writeReply(ctx, oprot, "Reference", seqID, &PropertyServiceReferenceResult{Success: r})
}

func writeException(ctx context.Context, oprot thrift.TProtocol, name string, seqID int32, x thrift.TApplicationException) {
	_ = oprot.WriteMessageBegin(name, thrift.EXCEPTION, seqID)
	_ = x.Write(oprot)
	_ = oprot.WriteMessageEnd()
	_ = oprot.Flush(ctx)
}

func writeReply(ctx context.Context, oprot thrift.TProtocol, name string, seqID int32, result thrift.TStruct) (bool, thrift.TException) {
	var err error
	if err2 := oprot.WriteMessageBegin(name, thrift.REPLY, seqID); err2 != nil {
		err = err2
	}
	if err2 := result.Write(oprot); err == nil && err2 != nil {
		err = err2
	}
	if err2 := oprot.WriteMessageEnd(); err == nil && err2 != nil {
		err = err2
	}
	if err2 := oprot.Flush(ctx); err == nil && err2 != nil {
		err = err2
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HELPER FUNCTIONS AND STRUCTURES

type PropertyServiceCalculateArgs struct {
	Req *CalcRequest `thrift:"req,1" json:"req"`
}

func (p *PropertyServiceCalculateArgs) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("PropertyServiceCalculateArgs(%+v)", *p)
}

func (p *PropertyServiceCalculateArgs) Read(iprot thrift.TProtocol) error {
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		if id != 1 || fieldType != thrift.STRUCT {
			return false, nil
		}
		p.Req = NewCalcRequest()
		return true, p.Req.Read(iprot)
	})
}

func (p *PropertyServiceCalculateArgs) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "Calculate_args", func() error {
		if p.Req == nil {
			return nil
		}
		return writeField(oprot, "req", thrift.STRUCT, 1, func() error {
			return p.Req.Write(oprot)
		})
	})
}

type PropertyServiceCalculateResult struct {
	Success *CalcResult `thrift:"success,0" json:"success,omitempty"`
	Err     *CalcError  `thrift:"err,1" json:"err,omitempty"`
}

func (p *PropertyServiceCalculateResult) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("PropertyServiceCalculateResult(%+v)", *p)
}

func (p *PropertyServiceCalculateResult) Read(iprot thrift.TProtocol) error {
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		if fieldType != thrift.STRUCT {
			return false, nil
		}
		switch id {
		case 0:
			p.Success = NewCalcResult()
			return true, p.Success.Read(iprot)
		case 1:
			p.Err = NewCalcError()
			return true, p.Err.Read(iprot)
		default:
			return false, nil
		}
	})
}

func (p *PropertyServiceCalculateResult) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "Calculate_result", func() error {
		if p.Success != nil {
			if err := writeField(oprot, "success", thrift.STRUCT, 0, func() error {
				return p.Success.Write(oprot)
			}); err != nil {
				return err
			}
		}
		if p.Err != nil {
			return writeField(oprot, "err", thrift.STRUCT, 1, func() error {
				return p.Err.Write(oprot)
			})
		}
		return nil
	})
}

type PropertyServiceReferenceArgs struct {
}

func (p *PropertyServiceReferenceArgs) Read(iprot thrift.TProtocol) error {
	return readStruct(iprot, p, func(int16, thrift.TType) (bool, error) {
		return false, nil
	})
}

func (p *PropertyServiceReferenceArgs) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "Reference_args", func() error {
		return nil
	})
}

type PropertyServiceReferenceResult struct {
	Success *ReferenceInfo `thrift:"success,0" json:"success,omitempty"`
}

func (p *PropertyServiceReferenceResult) Read(iprot thrift.TProtocol) error {
	return readStruct(iprot, p, func(id int16, fieldType thrift.TType) (bool, error) {
		if id != 0 || fieldType != thrift.STRUCT {
			return false, nil
		}
		p.Success = NewReferenceInfo()
		return true, p.Success.Read(iprot)
	})
}

func (p *PropertyServiceReferenceResult) Write(oprot thrift.TProtocol) error {
	return writeStruct(oprot, "Reference_result", func() error {
		if p.Success == nil {
			return nil
		}
		return writeField(oprot, "success", thrift.STRUCT, 0, func() error {
			return p.Success.Write(oprot)
		})
	})
}
