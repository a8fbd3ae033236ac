// Package app wires the property engine to its surfaces: command line, history
// database, journal, Lua scripts, thrift API and websocket.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/config"
	"github.com/fpawel/ethprop/internal/data"
	"github.com/fpawel/ethprop/internal/journal"
	"github.com/fpawel/ethprop/internal/report"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/jmoiron/sqlx"
	"github.com/powerman/structlog"
)

type App struct {
	cfg     config.Config
	engine  *thermo.Engine
	db      *sqlx.DB
	journal *journal.Journal
	stdout  io.Writer
}

// Main runs one command given by the process arguments.
func Main(args []string) error {
	flags := flag.NewFlagSet("ethprop", flag.ContinueOnError)
	configFilename := flags.String("config", config.Filename(), "config file")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: ethprop [-config file] command [flags]\n\ncommands:\n%s\nflags:\n", usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := config.Open(*configFilename); err != nil {
		return err
	}

	jrn, jrnFile, err := journal.Open(log)
	if err != nil {
		return merry.Prepend(err, "open journal")
	}
	defer log.ErrIfFail(jrnFile.Close)

	x, err := New(config.Get(), jrn, os.Stdout)
	if err != nil {
		return err
	}
	defer log.ErrIfFail(x.Close)

	if flags.NArg() == 0 {
		flags.Usage()
		return merry.New("command is not set")
	}
	return x.Run(context.Background(), flags.Args())
}

// New opens the history database named in c.
func New(c config.Config, jrn *journal.Journal, stdout io.Writer) (*App, error) {
	engine, err := c.Engine()
	if err != nil {
		return nil, err
	}
	log.Debug("open database: " + c.Database)
	db, err := data.Open(c.Database)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:     c,
		engine:  engine,
		db:      db,
		journal: jrn,
		stdout:  stdout,
	}, nil
}

func (x *App) Close() error {
	return x.db.Close()
}

// Run executes a command: args[0] is its name, the rest are its flags.
func (x *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return merry.New("command is not set")
	}
	cmd, ok := commands()[args[0]]
	if !ok {
		return merry.Errorf("unknown command %q", args[0])
	}
	return cmd(x, ctx, args[1:])
}

// sink stores a result in history and writes it to the journal.
func (x *App) sink(ctx context.Context, source string) func(thermo.Result) error {
	return func(r thermo.Result) error {
		if _, err := data.AddCalculation(ctx, x.db, source, r); err != nil {
			return merry.Prepend(err, "save calculation")
		}
		x.journal.Calculation(source, r)
		return nil
	}
}

func (x *App) converter() report.Converter {
	return report.Converter{
		Output:    x.cfg.Output,
		MolarMass: x.engine.Substance().MolarMass,
	}
}

var log = structlog.New()
