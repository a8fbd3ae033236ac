package data

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sqlx.DB {
	db, err := Open(":memory:")
	require.NoError(t, err)
	return db
}

func calc(t *testing.T, T, P float64, unit thermo.PressureUnit) thermo.Result {
	r, err := thermo.NewEthane().Calculate(thermo.Request{T: T, P: P, Unit: unit})
	require.NoError(t, err)
	return r
}

func TestAddGetCalculation(t *testing.T) {
	db := openMemory(t)
	defer db.Close()
	ctx := context.Background()

	r := calc(t, 350, 2, thermo.Bar)
	id, err := AddCalculation(ctx, db, "test", r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	x, err := GetCalculation(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "test", x.Source)
	assert.False(t, x.CreatedAt.IsZero())
	assert.Equal(t, r, x.Result())
}

func TestWarningsKept(t *testing.T) {
	db := openMemory(t)
	defer db.Close()
	ctx := context.Background()

	r := calc(t, 200, 1, thermo.Bar)
	require.Len(t, r.Warnings, 2)
	id, err := AddCalculation(ctx, db, "", r)
	require.NoError(t, err)

	x, err := GetCalculation(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, r.Warnings, x.Result().Warnings)
}

func TestListCalculations(t *testing.T) {
	db := openMemory(t)
	defer db.Close()
	ctx := context.Background()

	for _, T := range []float64{300, 350, 400} {
		_, err := AddCalculation(ctx, db, "", calc(t, T, 1, thermo.Atm))
		require.NoError(t, err)
	}

	xs, err := ListCalculations(ctx, db, 0)
	require.NoError(t, err)
	require.Len(t, xs, 3)
	assert.Equal(t, 400.0, xs[0].Temperature)
	assert.Equal(t, 300.0, xs[2].Temperature)

	xs, err = ListCalculations(ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, xs, 2)
	assert.Equal(t, int64(3), xs[0].CalculationID)
	assert.Equal(t, int64(2), xs[1].CalculationID)
}

func TestGetMissingCalculation(t *testing.T) {
	db := openMemory(t)
	defer db.Close()
	_, err := GetCalculation(context.Background(), db, 42)
	assert.Error(t, err)
}

func TestDeleteCalculations(t *testing.T) {
	db := openMemory(t)
	defer db.Close()
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := AddCalculation(ctx, db, "", calc(t, 320, 100, thermo.KPa))
		require.NoError(t, err)
	}
	n, err := DeleteCalculations(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	xs, err := ListCalculations(ctx, db, 0)
	require.NoError(t, err)
	assert.Empty(t, xs)
}

func TestOpenFileReopen(t *testing.T) {
	dir, err := ioutil.TempDir("", "ethprop")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "history.sqlite")

	db, err := Open(filename)
	require.NoError(t, err)
	_, err = AddCalculation(context.Background(), db, "", calc(t, 350, 200, thermo.KPa))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(filename)
	require.NoError(t, err)
	defer db.Close()
	xs, err := ListCalculations(context.Background(), db, 0)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	assert.Equal(t, thermo.KPa, xs[0].Result().Unit)
}
