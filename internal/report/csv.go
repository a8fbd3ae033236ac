package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/thermo"
)

// CSVHeader is the fixed column order of exported results.
var CSVHeader = []string{"T", "P", "P-unit", "H_ig", "S_ig", "H_R", "S_R", "H_total", "S_total"}

// WriteCSV writes rs in engine units, J/mol and J/(mol·K), without rounding.
func WriteCSV(w io.Writer, rs []thermo.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rs {
		if err := cw.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func SaveCSV(filename string, rs []thermo.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, rs); err != nil {
		_ = f.Close()
		return merry.Append(err, filename)
	}
	return f.Close()
}

func csvRecord(r thermo.Result) []string {
	return []string{
		formatExact(r.T),
		formatExact(r.P),
		string(r.Unit),
		formatExact(r.HIdeal),
		formatExact(r.SIdeal),
		formatExact(r.HResidual),
		formatExact(r.SResidual),
		formatExact(r.H),
		formatExact(r.S),
	}
}

func formatExact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
