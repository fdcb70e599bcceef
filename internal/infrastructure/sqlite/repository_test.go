package sqlite_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/sqlite"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryDSN(strings.ReplaceAll(t.Name(), "/", "_")))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newProduct(t *testing.T, db *gorm.DB, sku, reorder string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID: uuid.New().String(), SKU: sku, Name: "P " + sku,
		UnitPrice: dec("10.00"), TaxRate: dec("18"), ReorderLevel: dec(reorder),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, sqlite.NewProductRepository(db).Create(context.Background(), p))
	return p
}

func newOrder(number string, date time.Time) *entity.Order {
	return &entity.Order{
		ID: uuid.New().String(), Number: number, Kind: entity.OrderKindInvoice, Date: date,
		TotalTaxable: dec("450.00"), TotalTax: dec("81.00"), TotalAmount: dec("531.00"),
		Status: entity.OrderStatusPersisted, CreatedAt: time.Now().UTC(),
	}
}

func TestProductRepo_SKUDuplicado(t *testing.T) {
	db := openDB(t)
	newProduct(t, db, "A-1", "0")

	p := &entity.Product{ID: uuid.New().String(), SKU: "A-1", Name: "otro", CreatedAt: time.Now().UTC()}
	err := sqlite.NewProductRepository(db).Create(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)

	got, err := sqlite.NewProductRepository(db).GetBySKU(context.Background(), "A-1")
	require.NoError(t, err)
	assert.Equal(t, "10.00", got.UnitPrice.StringFixed(2))

	missing, err := sqlite.NewProductRepository(db).GetByID(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderRepo_LastNumberPorLongitud(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewOrderRepository(db)
	ctx := context.Background()
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	last, err := repo.LastNumber(ctx, "PO")
	require.NoError(t, err)
	assert.Empty(t, last)

	for _, n := range []string{"PO9999", "PO10000", "POS0001", "po0005", "INV0003"} {
		require.NoError(t, repo.Create(ctx, newOrder(n, day)))
	}
	last, err = repo.LastNumber(ctx, "PO")
	require.NoError(t, err)
	assert.Equal(t, "PO10000", last)

	err = repo.Create(ctx, newOrder("PO9999", day))
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
}

func TestOrderRepo_LastNumberIgnoraNumerosFueraDeSerie(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewOrderRepository(db)
	ctx := context.Background()
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, n := range []string{"INV0002", "INV2024-0001", "INV0001A", "INV00000099X"} {
		require.NoError(t, repo.Create(ctx, newOrder(n, day)))
	}
	last, err := repo.LastNumber(ctx, "INV")
	require.NoError(t, err)
	assert.Equal(t, "INV0002", last)

	require.NoError(t, repo.Create(ctx, newOrder("FV-[1]0009", day)))
	require.NoError(t, repo.Create(ctx, newOrder("FV-[1]0010", day)))
	last, err = repo.LastNumber(ctx, "FV-[1]")
	require.NoError(t, err)
	assert.Equal(t, "FV-[1]0010", last)
}

func TestOrderRepo_ListPorRangoYLineas(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewOrderRepository(db)
	ctx := context.Background()

	o := newOrder("INV0001", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.Create(ctx, newOrder("INV0002", time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))))

	for pos := 2; pos >= 1; pos-- {
		require.NoError(t, repo.CreateLine(ctx, &entity.OrderLine{
			ID: uuid.New().String(), OrderID: o.ID, Position: pos, Description: "L",
			Quantity: dec("3"), UnitPrice: dec("150.00"), TaxRate: dec("18"),
			TaxableValue: dec("450.00"), TaxAmount: dec("81.00"), LineTotal: dec("531.00"),
		}))
	}

	list, err := repo.List(ctx, repository.OrderFilter{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "INV0001", list[0].Number)
	assert.Equal(t, "531.00", list[0].TotalAmount.StringFixed(2))
	assert.Equal(t, "2024-03-10", list[0].Date.Format(time.DateOnly))

	lines, err := repo.GetLines(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Position)
	assert.Equal(t, "", lines[0].ProductID)
}

func TestOrderRepo_ListFiltraPorTipos(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewOrderRepository(db)
	ctx := context.Background()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for number, kind := range map[string]string{
		"INV0001": entity.OrderKindInvoice,
		"SO0001":  entity.OrderKindSale,
		"PO0001":  entity.OrderKindPurchase,
	} {
		o := newOrder(number, day)
		o.Kind = kind
		require.NoError(t, repo.Create(ctx, o))
	}

	f := repository.OrderFilter{From: day, To: day, Kinds: entity.SalesKinds}
	list, err := repo.List(ctx, f)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "INV0001", list[0].Number)
	assert.Equal(t, "SO0001", list[1].Number)

	f.Kinds = nil
	list, err = repo.List(ctx, f)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestProductRepo_Update(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewProductRepository(db)
	ctx := context.Background()
	p := newProduct(t, db, "A-1", "2")

	p.Name = "Cable UTP"
	p.UnitPrice = dec("12.50")
	p.ReorderLevel = dec("7")
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cable UTP", got.Name)
	assert.Equal(t, "12.50", got.UnitPrice.StringFixed(2))
	assert.Equal(t, "7", got.ReorderLevel.String())
	assert.Equal(t, "A-1", got.SKU)

	missing := &entity.Product{ID: uuid.New().String(), Name: "x"}
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrNotFound)
}

func TestStockRepo_DeltaYStockBajo(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	stock := sqlite.NewStockRepository(db)
	a := newProduct(t, db, "A", "5")
	b := newProduct(t, db, "B", "1")
	newProduct(t, db, "C", "0")

	qty, err := stock.ApplyDelta(ctx, a.ID, dec("0.1"))
	require.NoError(t, err)
	qty, err = stock.ApplyDelta(ctx, a.ID, dec("0.2"))
	require.NoError(t, err)
	assert.Equal(t, "0.3", qty.String(), "la suma es decimal exacta")

	_, err = stock.ApplyDelta(ctx, b.ID, dec("10"))
	require.NoError(t, err)

	low, err := stock.ListLow(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "A", low[0].SKU)
	assert.Equal(t, "C", low[1].SKU)
	assert.True(t, low[1].Quantity.IsZero())
}

func TestStockMovementRepo_SumaExacta(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	movs := sqlite.NewStockMovementRepository(db)
	a := newProduct(t, db, "A", "0")

	for _, q := range []string{"0.1", "0.2", "-0.05"} {
		require.NoError(t, movs.Create(ctx, &entity.StockMovement{
			ID: uuid.New().String(), ProductID: a.ID, Quantity: dec(q), Reason: "ajuste", CreatedAt: time.Now().UTC(),
		}))
	}
	sum, err := movs.SumByProduct(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.25", sum.String())

	list, err := movs.ListByProduct(ctx, a.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Empty(t, list[0].OrderID)
}
