package report

import (
	"bytes"
	"encoding/csv"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fpawel/ethprop/internal/config"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func golden(t *testing.T) thermo.Result {
	r, err := thermo.NewEthane().Calculate(thermo.Request{T: 350, P: 2, Unit: thermo.Bar})
	require.NoError(t, err)
	return r
}

func TestWriteCSV(t *testing.T) {
	r := golden(t)
	var b bytes.Buffer
	require.NoError(t, WriteCSV(&b, []thermo.Result{r, r}))

	records, err := csv.NewReader(&b).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"T", "P", "P-unit", "H_ig", "S_ig", "H_R", "S_R", "H_total", "S_total"}, records[0])

	row := records[1]
	assert.Equal(t, "350", row[0])
	assert.Equal(t, "2", row[1])
	assert.Equal(t, "bar", row[2])
	for i, want := range []float64{r.HIdeal, r.SIdeal, r.HResidual, r.SResidual, r.H, r.S} {
		v, err := strconv.ParseFloat(row[3+i], 64)
		require.NoError(t, err)
		assert.Equal(t, want, v, records[0][3+i])
	}
	assert.Equal(t, strconv.FormatFloat(r.H, 'g', -1, 64), row[7])
	assert.True(t, strings.HasPrefix(row[7], "2736.4674751824"), row[7])
}

func TestSaveCSV(t *testing.T) {
	dir, err := ioutil.TempDir("", "ethprop-report")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "results.csv")

	require.NoError(t, SaveCSV(filename, []thermo.Result{golden(t)}))
	b, err := ioutil.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "T,P,P-unit,"))
	assert.Equal(t, 2, strings.Count(string(b), "\n"))
}

func TestSaveXLSX(t *testing.T) {
	dir, err := ioutil.TempDir("", "ethprop-report")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "results.xlsx")

	r := golden(t)
	require.NoError(t, SaveXLSX(filename, []thermo.Result{r, r}))

	wb, err := xlsx.OpenFile(filename)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, "results", wb.Sheets[0].Name)
	assert.Equal(t, 3, wb.Sheets[0].MaxRow)
}

func TestCopyValue(t *testing.T) {
	r := golden(t)
	s, err := CopyValue(r, FieldS)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatFloat(r.S, 'g', -1, 64), s)
	assert.True(t, strings.HasPrefix(s, "2.86208383405"), s)

	for _, f := range Fields {
		s, err := CopyValue(r, f)
		require.NoError(t, err)
		v, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		want, _ := f.Value(r)
		assert.Equal(t, want, v, string(f))
	}

	_, err = CopyValue(r, "U")
	assert.Error(t, err)
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseField("h_total")
	assert.Error(t, err)
	_, err = ParseField("")
	assert.Error(t, err)
}

func TestCopyRow(t *testing.T) {
	r := golden(t)
	s, err := CopyRow(r, FieldH)
	require.NoError(t, err)
	assert.Equal(t, "H_total\t"+strconv.FormatFloat(r.H, 'g', -1, 64), s)
}

func TestConvertMolar(t *testing.T) {
	r := golden(t)
	p := Converter{Output: config.Output{Basis: config.Molar}, MolarMass: 30.069}.Convert(r)
	assert.Equal(t, r.H, p.H)
	assert.Equal(t, r.S, p.S)
	assert.Equal(t, "J/mol", p.HUnit)
}

func TestConvertMass(t *testing.T) {
	r := golden(t)
	conv := Converter{Output: config.Output{Basis: config.Mass}, MolarMass: 30.069}
	p := conv.Convert(r)
	assert.InEpsilon(t, r.H/30.069, p.H, 1e-15)
	assert.InEpsilon(t, r.SResidual/30.069, p.SResidual, 1e-15)
	assert.Equal(t, "kJ/(kg·K)", p.SUnit)

	conv.Output.Tabulated = config.Tabulated{Enable: true, H0: 1068.3, S0: 7.634}
	p2 := conv.Convert(r)
	assert.InDelta(t, p.H+1068.3, p2.H, 1e-9)
	assert.InDelta(t, p.S+7.634, p2.S, 1e-12)
	assert.InDelta(t, p.HIdeal+1068.3, p2.HIdeal, 1e-9)
	assert.InDelta(t, p.SIdeal+7.634, p2.SIdeal, 1e-12)
	assert.Equal(t, p.HResidual, p2.HResidual)
	assert.Equal(t, p.SResidual, p2.SResidual)
	assert.Equal(t, p2.HIdeal+p2.HResidual, p2.H)
	assert.Equal(t, p2.SIdeal+p2.SResidual, p2.S)
}

func TestNewResults(t *testing.T) {
	e := thermo.NewEthane()
	r1 := golden(t)
	r2, err := e.Calculate(thermo.Request{T: 250, P: 1, Unit: thermo.Bar})
	require.NoError(t, err)

	s := NewResults(Converter{Output: config.Output{Basis: config.Molar}}, 3, []thermo.Result{r1, r2}).String()
	assert.Contains(t, s, "T = 350 K, P = 2 bar")
	assert.Contains(t, s, "2736.467")
	assert.Contains(t, s, "J/(mol·K)")
	assert.Contains(t, s, thermo.WarnHeatCapacityRange.String())
	assert.Contains(t, s, " !")
}
