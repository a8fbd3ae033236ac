// Package server answers property requests over a websocket at /ws.
//
// Every message is a JSON object {"type": ..., "content": ...}:
//
//	-> {"type": "calc", "content": {"t": 350, "p": 2, "unit": "bar"}}
//	<- {"type": "result", "content": {"t": 350, ..., "h": 2736.46..., "s": 2.86...}}
//	-> {"type": "ref"}
//	<- {"type": "ref", "content": {"name": "ethane", "t0": 300, ...}}
//	<- {"type": "error", "content": {"kind": "InvalidMagnitude", "message": ..., "value": -5}}
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/gorilla/websocket"
	"github.com/powerman/structlog"
)

const (
	TypeCalc   = "calc"
	TypeRef    = "ref"
	TypeResult = "result"
	TypeError  = "error"
)

// Error kinds of failures detected before the engine is called.
const (
	KindBadRequest  = "BadRequest"
	KindUnknownType = "UnknownType"
	KindInternal    = "Internal"
)

type Msg struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

type ErrorContent struct {
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

type Reference struct {
	Name      string  `json:"name"`
	MolarMass float64 `json:"molar_mass"`
	T0        float64 `json:"t0"`
	P0        float64 `json:"p0"`
	Tc        float64 `json:"tc"`
	Pc        float64 `json:"pc"`
	Omega     float64 `json:"omega"`
	// Cp_ig = CpA + CpB·T + CpC·T², J/(mol·K)
	CpA float64 `json:"cp_a"`
	CpB float64 `json:"cp_b"`
	CpC float64 `json:"cp_c"`
}

type Server struct {
	upgrader websocket.Upgrader
	engine   *thermo.Engine
	sink     func(thermo.Result) error
	log      *structlog.Logger
}

func NewServer(log *structlog.Logger, engine *thermo.Engine, sink func(thermo.Result) error) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		engine: engine,
		sink:   sink,
		log:    log,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Listen starts serving on addr in background. The returned function shuts the server
// down.
func (s *Server) Listen(addr string) (net.Addr, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, merry.Append(err, addr)
	}
	srv := &http.Server{Handler: s.Handler()}
	s.log.Debug("serve websocket: " + ln.Addr().String())
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.PrintErr(merry.Append(err, "failed to serve websocket"))
		}
	}()
	return ln.Addr(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.ErrIfFail(func() error {
			return srv.Shutdown(ctx)
		}, "problem", "`failed to stop websocket server`")
	}, nil
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.PrintErr(err)
		return
	}
	defer s.log.ErrIfFail(conn.Close)
	log := s.log.New("remote", conn.RemoteAddr().String())
	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if isJSONError(err) {
				if err := conn.WriteJSON(errorMsg(KindBadRequest, err.Error(), nil)); err != nil {
					log.PrintErr(err)
					return
				}
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.PrintErr(err)
			}
			return
		}
		if err := conn.WriteJSON(s.reply(log, msg)); err != nil {
			log.PrintErr(err)
			return
		}
	}
}

func (s *Server) reply(log *structlog.Logger, msg Msg) Msg {
	switch msg.Type {
	case TypeCalc:
		var req thermo.Request
		if err := json.Unmarshal(msg.Content, &req); err != nil {
			return errorMsg(KindBadRequest, err.Error(), nil)
		}
		r, err := s.calculate(req)
		if err != nil {
			log.PrintErr(err, "t", req.T, "p", req.P, "unit", req.Unit)
			v, _ := thermo.OffendingValue(err)
			return errorMsg(thermo.ErrorKind(err), err.Error(), v)
		}
		for _, w := range r.Warnings {
			log.Warn(w.String(), "t", r.T, "p", r.P, "unit", r.Unit)
		}
		if s.sink != nil {
			if err := s.sink(r); err != nil {
				log.PrintErr(err)
				return errorMsg(KindInternal, err.Error(), nil)
			}
		}
		return contentMsg(TypeResult, r)
	case TypeRef:
		sub, ref := s.engine.Substance(), s.engine.Reference()
		return contentMsg(TypeRef, Reference{
			Name:      sub.Name,
			MolarMass: sub.MolarMass,
			T0:        ref.T0,
			P0:        ref.P0,
			Tc:        sub.Tc,
			Pc:        sub.Pc,
			Omega:     sub.Omega,
			CpA:       sub.A,
			CpB:       sub.B,
			CpC:       sub.C,
		})
	default:
		return errorMsg(KindUnknownType, "unknown message type", msg.Type)
	}
}

// calculate accepts the unit tag in any letter case, as the other surfaces do.
func (s *Server) calculate(req thermo.Request) (thermo.Result, error) {
	unit, err := thermo.ParsePressureUnit(string(req.Unit))
	if err != nil {
		return thermo.Result{}, err
	}
	req.Unit = unit
	return s.engine.Calculate(req)
}

func isJSONError(err error) bool {
	switch err.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		return true
	default:
		return false
	}
}

func contentMsg(msgType string, v interface{}) Msg {
	b, err := json.Marshal(v)
	if err != nil {
		return errorMsg(KindInternal, err.Error(), nil)
	}
	return Msg{Type: msgType, Content: b}
}

func errorMsg(kind, message string, value interface{}) Msg {
	b, _ := json.Marshal(ErrorContent{Kind: kind, Message: message, Value: value})
	return Msg{Type: TypeError, Content: b}
}
