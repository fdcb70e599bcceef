package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/catalog"
	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/storage"
	"github.com/jhoicas/Ordenes-api/pkg/config"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

func TestReadCSV_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.csv")
	// "Cañería" en ISO-8859-1: ñ = 0xF1
	content := []byte("sku,nombre\nC-1,Ca\xf1er\xeda\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	rows, err := readCSV(path, "latin1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cañería", rows[0][1])

	_, err = readCSV(path, "ebcdic")
	assert.Error(t, err)
}

func TestSeedProducts_ConSaldoInicialYReejecucion(t *testing.T) {
	ctx := context.Background()
	store, err := storage.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "s.db")}, nil)
	require.NoError(t, err)
	defer store.Close()

	uc := catalog.NewUseCase(store.Products, store.Parties)
	stock := inventory.NewStockUseCase(store.Tx, store.Stock, store.Movements, nil, false, logger.Nop())
	rows := [][]string{
		{"A-1", "Tornillo", "Ferretería", "0.50", "18", "100", "250"},
		{"A-2", "Tuerca", "", "0.30", "18", "50"},
		{"", "Sin SKU", "", "1", "0", "0"},
	}

	created, skipped := seedProducts(ctx, uc, stock, rows, logger.Nop())
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, skipped)

	p, err := store.Products.GetBySKU(ctx, "A-1")
	require.NoError(t, err)
	rec, err := stock.Reconcile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "250", rec.Level)
	assert.True(t, rec.Consistent)

	created, skipped = seedProducts(ctx, uc, stock, rows[:2], logger.Nop())
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, skipped)

	n, _ := seedParties(ctx, uc, [][]string{{"CUSTOMER", "Cliente"}}, logger.Nop())
	assert.Equal(t, 1, n)
	list, err := uc.ListParties(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
