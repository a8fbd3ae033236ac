// Command ethclient queries a running "ethprop serve" over the thrift API.
//
//	ethclient -addr 127.0.0.1:9091 calc 350 "2 bar"
//	ethclient ref
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/api"
	"github.com/fpawel/ethprop/internal/config"
	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/powerman/structlog"
)

func main() {
	pkg.InitLog()
	addr := flag.String("addr", "", "api address, the config value by default")
	flag.Parse()
	if err := run(*addr, flag.Args()); err != nil {
		pkg.PrintErrWithStack(log, err)
		os.Exit(1)
	}
}

func run(addr string, args []string) error {
	if addr == "" {
		if err := config.Open(config.Filename()); err != nil {
			return err
		}
		addr = config.Get().Api.Addr
	}
	log.Debug("connect: " + addr)
	client, transport, err := api.Dial(addr)
	if err != nil {
		return err
	}
	defer log.ErrIfFail(transport.Close)

	ctx := context.Background()
	var r interface{}
	switch {
	case len(args) == 3 && args[0] == "calc":
		T, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return merry.Append(err, "temperature")
		}
		P, unit, err := thermo.ParsePressure(args[2])
		if err != nil {
			return err
		}
		r, err = client.Calculate(ctx, &api.CalcRequest{T: T, P: P, Unit: string(unit)})
		if e, ok := err.(*api.CalcError); ok {
			return e.Thermo()
		}
		if err != nil {
			return err
		}
	case len(args) == 1 && args[0] == "ref":
		if r, err = client.Reference(ctx); err != nil {
			return err
		}
	default:
		return merry.New(`usage: ethclient [-addr host:port] calc T P | ref`)
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(b))
	return err
}

var log = structlog.New()
