// Package data keeps the history of calculated state points in sqlite.
package data

import (
	"context"
	"strings"
	"time"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/pkg"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/jmoiron/sqlx"
)

func Open(filename string) (*sqlx.DB, error) {
	db, err := pkg.OpenSqliteDBx(filename)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(SQLCreate); err != nil {
		_ = db.Close()
		return nil, merry.Append(err, filename)
	}
	return db, nil
}

type Calculation struct {
	CalculationID int64     `db:"calculation_id"`
	CreatedAt     time.Time `db:"created_at"`
	Source        string    `db:"source"`
	Temperature   float64   `db:"temperature"`
	Pressure      float64   `db:"pressure"`
	PressureUnit  string    `db:"pressure_unit"`
	PressureKPa   float64   `db:"pressure_kpa"`
	Tr            float64   `db:"tr"`
	Pr            float64   `db:"pr"`
	HIdeal        float64   `db:"h_ig"`
	SIdeal        float64   `db:"s_ig"`
	HResidual     float64   `db:"h_r"`
	SResidual     float64   `db:"s_r"`
	H             float64   `db:"h"`
	S             float64   `db:"s"`
	Warnings      string    `db:"warnings"`
}

func NewCalculation(source string, r thermo.Result) Calculation {
	ws := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		ws[i] = string(w)
	}
	return Calculation{
		CreatedAt:    time.Now(),
		Source:       source,
		Temperature:  r.T,
		Pressure:     r.P,
		PressureUnit: string(r.Unit),
		PressureKPa:  r.PressureKPa,
		Tr:           r.Tr,
		Pr:           r.Pr,
		HIdeal:       r.HIdeal,
		SIdeal:       r.SIdeal,
		HResidual:    r.HResidual,
		SResidual:    r.SResidual,
		H:            r.H,
		S:            r.S,
		Warnings:     strings.Join(ws, ","),
	}
}

// Result restores the engine result the row was made from.
func (x Calculation) Result() thermo.Result {
	r := thermo.Result{
		T:           x.Temperature,
		P:           x.Pressure,
		Unit:        thermo.PressureUnit(x.PressureUnit),
		PressureKPa: x.PressureKPa,
		Tr:          x.Tr,
		Pr:          x.Pr,
		HIdeal:      x.HIdeal,
		SIdeal:      x.SIdeal,
		HResidual:   x.HResidual,
		SResidual:   x.SResidual,
		H:           x.H,
		S:           x.S,
	}
	if len(x.Warnings) > 0 {
		for _, w := range strings.Split(x.Warnings, ",") {
			r.Warnings = append(r.Warnings, thermo.Warning(w))
		}
	}
	return r
}

func AddCalculation(ctx context.Context, db *sqlx.DB, source string, r thermo.Result) (int64, error) {
	x := NewCalculation(source, r)
	res, err := db.NamedExecContext(ctx, `
INSERT INTO calculation(created_at, source, temperature, pressure, pressure_unit, pressure_kpa,
                        tr, pr, h_ig, s_ig, h_r, s_r, h, s, warnings)
VALUES (:created_at, :source, :temperature, :pressure, :pressure_unit, :pressure_kpa,
        :tr, :pr, :h_ig, :s_ig, :h_r, :s_r, :h, :s, :warnings)`, x)
	if err != nil {
		return 0, err
	}
	return pkg.SqlGetNewInsertedID(res)
}

// ListCalculations returns up to limit rows, newest first. limit <= 0 lists all.
func ListCalculations(ctx context.Context, db *sqlx.DB, limit int) (xs []Calculation, err error) {
	if limit <= 0 {
		limit = -1
	}
	err = db.SelectContext(ctx, &xs,
		`SELECT * FROM calculation ORDER BY calculation_id DESC LIMIT ?`, limit)
	return
}

func GetCalculation(ctx context.Context, db *sqlx.DB, calculationID int64) (x Calculation, err error) {
	err = db.GetContext(ctx, &x, `SELECT * FROM calculation WHERE calculation_id = ?`, calculationID)
	if err != nil {
		err = merry.Appendf(err, "calculation_id=%d", calculationID)
	}
	return
}

func DeleteCalculations(ctx context.Context, db *sqlx.DB) (int64, error) {
	r, err := db.ExecContext(ctx, `DELETE FROM calculation`)
	if err != nil {
		return 0, err
	}
	return r.RowsAffected()
}
