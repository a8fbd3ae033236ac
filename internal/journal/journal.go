// Package journal keeps a human readable record of calculations: one line per state
// point or failure in today's logs/YYYY-MM-DD.journal.log, mirrored to the structured log.
package journal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/pkg/logfile"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/powerman/structlog"
)

type Journal struct {
	mu  sync.Mutex
	w   io.Writer
	log *structlog.Logger
	now func() time.Time
}

// Open appends to today's journal file.
func Open(log *structlog.Logger) (*Journal, io.Closer, error) {
	file, err := logfile.New(".journal")
	if err != nil {
		return nil, nil, err
	}
	return New(file, log), file, nil
}

func New(w io.Writer, log *structlog.Logger) *Journal {
	return &Journal{w: w, log: log, now: time.Now}
}

func (x *Journal) Calculation(source string, r thermo.Result) {
	text := fmt.Sprintf("%s: T=%s K P=%s %s H=%s J/mol S=%s J/(mol·K)",
		source, pkg.FormatFloat(r.T, -1), pkg.FormatFloat(r.P, -1), r.Unit,
		pkg.FormatFloat(r.H, -1), pkg.FormatFloat(r.S, -1))
	if len(r.Warnings) > 0 {
		text += " warnings: " + thermo.FormatWarnings(r.Warnings)
		x.write(levelWarn, text)
		return
	}
	x.write(levelInfo, text)
}

func (x *Journal) Failure(source string, err error) {
	x.write(levelErr, fmt.Sprintf("%s: %v", source, err))
}

func (x *Journal) Info(text string) {
	x.write(levelInfo, text)
}

type level string

const (
	levelInfo level = ""
	levelWarn level = "WRN "
	levelErr  level = "ERR "
)

func (x *Journal) write(lvl level, text string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	strTime := x.now().Format("15:04:05")
	log := pkg.LogPrependSuffixKeys(x.log, structlog.KeyTime, strTime)
	switch lvl {
	case levelWarn:
		log.Warn(text)
	case levelErr:
		log.PrintErr(text)
	default:
		log.Info(text)
	}
	if _, err := fmt.Fprintf(x.w, "%s %s%s\n", strTime, lvl, text); err != nil {
		x.log.PrintErr(err)
	}
}
