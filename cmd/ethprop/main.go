package main

import (
	"flag"
	"os"

	"github.com/fpawel/ethprop/internal/app"
	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/powerman/structlog"
)

func main() {
	pkg.InitLog()
	if err := app.Main(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		pkg.PrintErrWithStack(structlog.New(), err)
		os.Exit(1)
	}
}
