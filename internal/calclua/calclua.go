// Package calclua runs Lua scripts that evaluate batches of state points.
//
// A script sees the global "ethane":
//
//	local r = ethane:Calc(350, 2, "bar")
//	print(r.h, r.s)
//	local ref = ethane:Ref()
//	local rs = ethane:Sweep{t_from = 300, t_to = 400, t_step = 50, p = {1, 2}, unit = "bar"}
//	ethane:Info("done", #rs)
//	print(require("json").encode(r))
//
// Engine failures raise Lua errors whose message starts with the error kind, so they
// can be caught with pcall.
package calclua

import (
	"context"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/powerman/structlog"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
	luar "layeh.com/gopher-luar"
)

// Sink receives every successfully calculated state point.
type Sink func(thermo.Result) error

type Script struct {
	Engine *thermo.Engine
	Sink   Sink
	Log    *structlog.Logger
}

func (x Script) RunFile(ctx context.Context, filename string) error {
	return x.run(ctx, func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

func (x Script) RunString(ctx context.Context, source string) error {
	return x.run(ctx, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func (x Script) run(ctx context.Context, do func(*lua.LState) error) error {
	if x.Engine == nil {
		return merry.New("lua: engine is not set")
	}
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)
	luajson.Preload(L)
	L.SetGlobal("ethane", luar.New(L, NewImport(x.Log, L, x.Engine, x.Sink)))
	return do(L)
}
