package report

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/tealeg/xlsx/v3"
)

// SaveXLSX writes rs to a workbook with one sheet, columns as in CSVHeader.
func SaveXLSX(filename string, rs []thermo.Result) error {
	wb := xlsx.NewFile()
	sh, err := wb.AddSheet("results")
	if err != nil {
		return merry.Append(err, filename)
	}
	defer sh.Close()

	row := sh.AddRow()
	for _, s := range CSVHeader {
		row.AddCell().SetValue(s)
	}
	for _, r := range rs {
		row := sh.AddRow()
		appendFloat := func(v float64) {
			row.AddCell().SetFloat(v)
		}
		appendFloat(r.T)
		appendFloat(r.P)
		row.AddCell().SetValue(string(r.Unit))
		for _, v := range []float64{r.HIdeal, r.SIdeal, r.HResidual, r.SResidual, r.H, r.S} {
			appendFloat(v)
		}
	}
	if err := wb.Save(filename); err != nil {
		return merry.Append(err, filename)
	}
	return nil
}
