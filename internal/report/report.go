// Package report renders calculation results for people and for other programs:
// aligned text tables, CSV files and clipboard text.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/thermo"
)

type Report struct {
	headers []string
	tables  []*Table
}

func (x *Report) AddHeader(header string) {
	x.headers = append(x.headers, header)
}

func (x *Report) AddTable(head string) *Table {
	tab := &Table{head: head}
	x.tables = append(x.tables, tab)
	return tab
}

type Table struct {
	head    string
	columns []string
	rows    []*TableRow
}

func (x *Table) SetColumns(columns ...string) {
	x.columns = columns
}

func (x *Table) AddRow(s string) *TableRow {
	row := &TableRow{head: s}
	x.rows = append(x.rows, row)
	return row
}

type TableRow struct {
	head  string
	cells []*TableCell
}

func (x *TableRow) AddCell(s string) {
	x.cells = append(x.cells, &TableCell{text: s})
}

func (x *TableRow) AddCellOk(s string) {
	x.cells = append(x.cells, &TableCell{text: s, ok: ptrBool(true)})
}

func (x *TableRow) AddCellErr(s string) {
	x.cells = append(x.cells, &TableCell{text: s, ok: ptrBool(false)})
}

type TableCell struct {
	text string
	ok   *bool
}

func (x TableCell) String() string {
	if x.ok != nil && !*x.ok {
		return x.text + " !"
	}
	return x.text
}

func ptrBool(x bool) *bool {
	return &x
}

// WriteText renders the report as tab-aligned plain text.
func (x *Report) WriteText(w io.Writer) error {
	for _, h := range x.headers {
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	for _, tab := range x.tables {
		if err := tab.writeText(w); err != nil {
			return err
		}
	}
	return nil
}

func (x *Report) String() string {
	var b strings.Builder
	_ = x.WriteText(&b)
	return b.String()
}

func (x *Table) writeText(w io.Writer) error {
	if x.head != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", x.head); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(x.columns) > 0 {
		fmt.Fprintf(tw, "\t%s\t\n", strings.Join(x.columns, "\t"))
	}
	for _, row := range x.rows {
		fmt.Fprint(tw, row.head)
		for _, c := range row.cells {
			fmt.Fprintf(tw, "\t%s", c)
		}
		fmt.Fprint(tw, "\t\n")
	}
	return tw.Flush()
}

// NewResults lays out one table per result: ideal, residual and total parts of H and S
// in the display basis. Warnings follow each table; their values are marked with "!".
func NewResults(conv Converter, precision int, rs []thermo.Result) *Report {
	rpt := new(Report)
	for _, r := range rs {
		p := conv.Convert(r)
		tab := rpt.AddTable(fmt.Sprintf("T = %s K, P = %s %s (Tr = %s, Pr = %s)",
			pkg.FormatFloat(r.T, precision), pkg.FormatFloat(r.P, precision), r.Unit,
			pkg.FormatFloat(r.Tr, 4), pkg.FormatFloat(r.Pr, 4)))
		tab.SetColumns("ideal gas", "residual", "total", "unit")
		addRow := func(name string, ig, res, total float64, unit string) {
			row := tab.AddRow(name)
			row.AddCell(pkg.FormatFloat(ig, precision))
			row.AddCell(pkg.FormatFloat(res, precision))
			if len(r.Warnings) > 0 {
				row.AddCellErr(pkg.FormatFloat(total, precision))
			} else {
				row.AddCellOk(pkg.FormatFloat(total, precision))
			}
			row.AddCell(unit)
		}
		addRow("H", p.HIdeal, p.HResidual, p.H, p.HUnit)
		addRow("S", p.SIdeal, p.SResidual, p.S, p.SUnit)
		for _, w := range r.Warnings {
			tab.AddRow("warning").AddCell(w.String())
		}
	}
	return rpt
}
