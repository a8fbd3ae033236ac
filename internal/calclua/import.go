package calclua

import (
	"math"
	"strings"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/powerman/structlog"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// Import is the Go side of the "ethane" global.
type Import struct {
	l      *lua.LState
	log    *structlog.Logger
	engine *thermo.Engine
	sink   Sink
}

func NewImport(log *structlog.Logger, luaState *lua.LState, engine *thermo.Engine, sink Sink) *Import {
	if log == nil {
		log = pkg.NewLogger("lua")
	}
	return &Import{
		l:      luaState,
		log:    log,
		engine: engine,
		sink:   sink,
	}
}

// Sweep is a grid of state points: temperatures TFrom, TFrom+TStep, ... up to TTo for
// every pressure in P.
type Sweep struct {
	TFrom float64
	TTo   float64
	TStep float64
	P     []float64
	Unit  string
}

// MaxSweepPoints limits the number of state points in one sweep.
const MaxSweepPoints = 100000

func (x Sweep) Requests() ([]thermo.Request, error) {
	if !(x.TStep > 0) || math.IsInf(x.TStep, 0) {
		return nil, merry.Errorf("sweep: t_step=%v must be positive", x.TStep)
	}
	if math.IsNaN(x.TFrom) || math.IsInf(x.TFrom, 0) || math.IsNaN(x.TTo) || math.IsInf(x.TTo, 0) {
		return nil, merry.Errorf("sweep: t_from=%v, t_to=%v must be finite", x.TFrom, x.TTo)
	}
	if x.TTo < x.TFrom {
		return nil, merry.Errorf("sweep: t_to=%v is below t_from=%v", x.TTo, x.TFrom)
	}
	if len(x.P) == 0 {
		return nil, merry.New("sweep: empty pressure list")
	}
	unit, err := thermo.ParsePressureUnit(x.Unit)
	if err != nil {
		return nil, err
	}
	steps := math.Floor((x.TTo-x.TFrom)/x.TStep + 1e-9)
	if total := (steps + 1) * float64(len(x.P)); math.IsInf(total, 0) || total > MaxSweepPoints {
		return nil, merry.Errorf("sweep: %v state points, at most %d allowed", total, MaxSweepPoints)
	}
	n := int(steps)
	rs := make([]thermo.Request, 0, (n+1)*len(x.P))
	for i := 0; i <= n; i++ {
		T := x.TFrom + float64(i)*x.TStep
		for _, P := range x.P {
			rs = append(rs, thermo.Request{T: T, P: P, Unit: unit})
		}
	}
	return rs, nil
}

func (x *Import) Calc(T, P float64, unit string) *lua.LTable {
	u, err := thermo.ParsePressureUnit(unit)
	x.check(err)
	return x.calc(thermo.Request{T: T, P: P, Unit: u})
}

func (x *Import) Ref() *lua.LTable {
	sub, ref := x.engine.Substance(), x.engine.Reference()
	t := x.l.NewTable()
	t.RawSetString("name", lua.LString(sub.Name))
	t.RawSetString("molar_mass", lua.LNumber(sub.MolarMass))
	t.RawSetString("t0", lua.LNumber(ref.T0))
	t.RawSetString("p0", lua.LNumber(ref.P0))
	t.RawSetString("tc", lua.LNumber(sub.Tc))
	t.RawSetString("pc", lua.LNumber(sub.Pc))
	t.RawSetString("omega", lua.LNumber(sub.Omega))
	t.RawSetString("cp_a", lua.LNumber(sub.A))
	t.RawSetString("cp_b", lua.LNumber(sub.B))
	t.RawSetString("cp_c", lua.LNumber(sub.C))
	return t
}

func (x *Import) Sweep(arg *lua.LTable) *lua.LTable {
	var sw Sweep
	x.check(gluamapper.Map(arg, &sw))
	rs, err := sw.Requests()
	x.check(err)
	t := x.l.NewTable()
	for _, r := range rs {
		t.Append(x.calc(r))
	}
	return t
}

func (x *Import) Info(args ...lua.LValue) {
	xs := make([]string, len(args))
	for i := range args {
		xs[i] = stringify(args[i])
	}
	x.log.Info(strings.Join(xs, " "))
}

func (x *Import) Stringify(v lua.LValue) string {
	return stringify(v)
}

func (x *Import) calc(r thermo.Request) *lua.LTable {
	res, err := x.engine.Calculate(r)
	x.check(err)
	for _, w := range res.Warnings {
		x.log.Warn(w.String(), "t", res.T, "p", res.P, "unit", res.Unit)
	}
	if x.sink != nil {
		x.check(x.sink(res))
	}
	return resultTable(x.l, res)
}

func (x *Import) check(err error) {
	if err == nil {
		return
	}
	if kind := thermo.ErrorKind(err); kind != "" {
		x.l.RaiseError("%s: %s", kind, err)
	}
	x.l.RaiseError("%s", err)
}

func resultTable(l *lua.LState, r thermo.Result) *lua.LTable {
	t := l.NewTable()
	t.RawSetString("t", lua.LNumber(r.T))
	t.RawSetString("p", lua.LNumber(r.P))
	t.RawSetString("unit", lua.LString(r.Unit))
	t.RawSetString("p_kpa", lua.LNumber(r.PressureKPa))
	t.RawSetString("tr", lua.LNumber(r.Tr))
	t.RawSetString("pr", lua.LNumber(r.Pr))
	t.RawSetString("h_ig", lua.LNumber(r.HIdeal))
	t.RawSetString("s_ig", lua.LNumber(r.SIdeal))
	t.RawSetString("h_r", lua.LNumber(r.HResidual))
	t.RawSetString("s_r", lua.LNumber(r.SResidual))
	t.RawSetString("h", lua.LNumber(r.H))
	t.RawSetString("s", lua.LNumber(r.S))
	ws := l.NewTable()
	for _, w := range r.Warnings {
		ws.Append(lua.LString(w))
	}
	t.RawSetString("warnings", ws)
	return t
}
