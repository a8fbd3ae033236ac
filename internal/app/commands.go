package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/api"
	"github.com/fpawel/ethprop/internal/calclua"
	"github.com/fpawel/ethprop/internal/data"
	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/report"
	"github.com/fpawel/ethprop/internal/server"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/powerman/structlog"
)

type command func(x *App, ctx context.Context, args []string) error

func commands() map[string]command {
	return map[string]command{
		"calc":    (*App).calc,
		"ref":     (*App).ref,
		"serve":   (*App).serve,
		"run":     (*App).run,
		"history": (*App).history,
		"export":  (*App).export,
		"clear":   (*App).clear,
		"config":  (*App).config,
	}
}

const usage = `  calc -t T -p P [-unit U] [-field F]  calculate H and S at T [K] and P ("2 bar", "101.3 kPa", "2e5")
  ref                                  show the reference state and substance constants
  serve                                serve the thrift API and the websocket until interrupted
  run script.lua                       run a Lua script
  history [-n N]                       list the last N calculations
  export -o file [-n N]                save the last N calculations as .csv or .xlsx
  clear                                delete the calculation history
  config                               show the effective config
`

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func (x *App) calc(ctx context.Context, args []string) error {
	flags := newFlagSet("calc")
	T := flags.Float64("t", 0, "temperature, K")
	strP := flags.String("p", "", "pressure with optional unit suffix")
	strUnit := flags.String("unit", "", "pressure unit: Pa, kPa, bar, atm")
	field := flags.String("field", "", "print one field at full precision: T, P, H_ig, S_ig, H_R, S_R, H_total, S_total")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var fieldCopy report.Field
	if *field != "" {
		f, err := report.ParseField(*field)
		if err != nil {
			return err
		}
		fieldCopy = f
	}
	req, err := parseRequest(*T, *strP, *strUnit)
	if err != nil {
		x.journal.Failure("cli", err)
		return err
	}
	r, err := x.engine.Calculate(req)
	if err != nil {
		x.journal.Failure("cli", err)
		return err
	}
	if err := x.sink(ctx, "cli")(r); err != nil {
		return err
	}
	if fieldCopy != "" {
		s, err := report.CopyValue(r, fieldCopy)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(x.stdout, s)
		return err
	}
	return report.NewResults(x.converter(), x.cfg.Output.FloatPrecision, []thermo.Result{r}).WriteText(x.stdout)
}

// parseRequest reads the pressure the way it is typed by a user: with a unit suffix or
// as a bare number in Pa. An explicit unit overrides the suffix.
func parseRequest(T float64, strP, strUnit string) (thermo.Request, error) {
	if strP == "" {
		return thermo.Request{}, merry.New("pressure is not set")
	}
	P, unit, err := thermo.ParsePressure(strP)
	if err != nil {
		return thermo.Request{}, err
	}
	if strUnit != "" {
		if unit, err = thermo.ParsePressureUnit(strUnit); err != nil {
			return thermo.Request{}, err
		}
	}
	return thermo.Request{T: T, P: P, Unit: unit}, nil
}

func (x *App) ref(context.Context, []string) error {
	sub, ref := x.engine.Substance(), x.engine.Reference()
	rpt := new(report.Report)
	rpt.AddHeader(fmt.Sprintf("%s, M = %s g/mol", sub.Name, pkg.FormatFloat(sub.MolarMass, -1)))
	tab := rpt.AddTable("reference state")
	addRow := func(name string, v float64, unit string) {
		row := tab.AddRow(name)
		row.AddCell(pkg.FormatFloat(v, -1))
		row.AddCell(unit)
	}
	addRow("T0", ref.T0, "K")
	addRow("P0", ref.P0, "kPa")
	tab = rpt.AddTable("critical constants")
	addRow("Tc", sub.Tc, "K")
	addRow("Pc", sub.Pc, "kPa")
	addRow("omega", sub.Omega, "")
	tab = rpt.AddTable("ideal gas heat capacity, Cp = A + B·T + C·T²")
	addRow("A", sub.A, "J/(mol·K)")
	addRow("B", sub.B, "J/(mol·K²)")
	addRow("C", sub.C, "J/(mol·K³)")
	return rpt.WriteText(x.stdout)
}

func (x *App) serve(ctx context.Context, _ []string) error {
	apiSrv, err := api.Listen(log, x.cfg.Api.Addr, &api.Handler{
		Engine: x.engine,
		Sink:   x.sink(ctx, "api"),
		Log:    log.New(structlog.KeyUnit, "api"),
	})
	if err != nil {
		return err
	}
	defer log.ErrIfFail(apiSrv.Stop, "problem", "`failed to stop server`")

	wsAddr, stopWs, err := server.NewServer(log.New(structlog.KeyUnit, "ws"), x.engine, x.sink(ctx, "ws")).
		Listen(x.cfg.Ws.Addr)
	if err != nil {
		return err
	}
	defer stopWs()

	x.journal.Info(fmt.Sprintf("serve: api %s, websocket ws://%s/ws", apiSrv.Addr(), wsAddr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(done)
	select {
	case sig := <-done:
		log.Debug("system signal: " + sig.String())
	case <-ctx.Done():
		log.Debug("serve: " + ctx.Err().Error())
	}
	return nil
}

func (x *App) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return merry.New("run: script file name must be set")
	}
	filename := args[0]
	var rs []thermo.Result
	sink := x.sink(ctx, "lua:"+filepath.Base(filename))
	err := calclua.Script{
		Engine: x.engine,
		Log:    log.New(structlog.KeyUnit, "lua"),
		Sink: func(r thermo.Result) error {
			rs = append(rs, r)
			return sink(r)
		},
	}.RunFile(ctx, filename)
	if err != nil {
		x.journal.Failure(filename, err)
		return err
	}
	x.journal.Info(fmt.Sprintf("%s: %d state points", filename, len(rs)))
	if len(rs) == 0 {
		return nil
	}
	return report.NewResults(x.converter(), x.cfg.Output.FloatPrecision, rs).WriteText(x.stdout)
}

func (x *App) history(ctx context.Context, args []string) error {
	flags := newFlagSet("history")
	n := flags.Int("n", 20, "number of calculations, 0 lists all")
	if err := flags.Parse(args); err != nil {
		return err
	}
	xs, err := data.ListCalculations(ctx, x.db, *n)
	if err != nil {
		return err
	}
	prec := x.cfg.Output.FloatPrecision
	conv := x.converter()
	rpt := new(report.Report)
	tab := rpt.AddTable("")
	var hUnit, sUnit string
	for _, c := range xs {
		p := conv.Convert(c.Result())
		hUnit, sUnit = p.HUnit, p.SUnit
		row := tab.AddRow(fmt.Sprintf("%d", c.CalculationID))
		row.AddCell(c.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		row.AddCell(c.Source)
		row.AddCell(pkg.FormatFloat(c.Temperature, prec))
		row.AddCell(pkg.FormatFloat(c.Pressure, prec) + " " + c.PressureUnit)
		if c.Warnings == "" {
			row.AddCellOk(pkg.FormatFloat(p.H, prec))
			row.AddCellOk(pkg.FormatFloat(p.S, prec))
		} else {
			row.AddCellErr(pkg.FormatFloat(p.H, prec))
			row.AddCellErr(pkg.FormatFloat(p.S, prec))
		}
	}
	if len(xs) == 0 {
		_, err := fmt.Fprintln(x.stdout, "history is empty")
		return err
	}
	tab.SetColumns("created", "source", "T, K", "P", "H, "+hUnit, "S, "+sUnit)
	return rpt.WriteText(x.stdout)
}

func (x *App) export(ctx context.Context, args []string) error {
	flags := newFlagSet("export")
	filename := flags.String("o", "", "output file, .csv or .xlsx")
	n := flags.Int("n", 0, "number of last calculations, 0 exports all")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *filename == "" {
		return merry.New("export: output file name must be set with -o")
	}
	xs, err := data.ListCalculations(ctx, x.db, *n)
	if err != nil {
		return err
	}
	rs := make([]thermo.Result, len(xs))
	for i, c := range xs {
		// chronological order
		rs[len(xs)-1-i] = c.Result()
	}
	save := report.SaveCSV
	if strings.EqualFold(filepath.Ext(*filename), ".xlsx") {
		save = report.SaveXLSX
	}
	if err := save(*filename, rs); err != nil {
		return err
	}
	x.journal.Info(fmt.Sprintf("export: %d rows to %s", len(rs), *filename))
	return nil
}

func (x *App) clear(ctx context.Context, _ []string) error {
	n, err := data.DeleteCalculations(ctx, x.db)
	if err != nil {
		return err
	}
	x.journal.Info(fmt.Sprintf("history cleared: %d calculations deleted", n))
	return nil
}

func (x *App) config(context.Context, []string) error {
	_, err := x.stdout.Write(x.cfg.Yaml())
	return err
}
