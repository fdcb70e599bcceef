package ordering_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/application/ports"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/order"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/sqlite"
)

type env struct {
	db        *gorm.DB
	runner    *sqlite.TxRunner
	orders    *sqlite.OrderRepo
	products  *sqlite.ProductRepo
	parties   *sqlite.PartyRepo
	stock     *sqlite.StockRepo
	movements *sqlite.StockMovementRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sqlite.Open(sqlite.MemoryDSN(name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &env{
		db:        db,
		runner:    sqlite.NewTxRunner(db),
		orders:    sqlite.NewOrderRepository(db),
		products:  sqlite.NewProductRepository(db),
		parties:   sqlite.NewPartyRepository(db),
		stock:     sqlite.NewStockRepository(db),
		movements: sqlite.NewStockMovementRepository(db),
	}
}

func (e *env) product(t *testing.T, sku, price, rate string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         "Producto " + sku,
		UnitPrice:    decimal.RequireFromString(price),
		TaxRate:      decimal.RequireFromString(rate),
		ReorderLevel: decimal.NewFromInt(2),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, e.products.Create(context.Background(), p))
	return p
}

func (e *env) supplier(t *testing.T, name string) *entity.Party {
	t.Helper()
	p := &entity.Party{ID: uuid.New().String(), Kind: entity.PartyKindSupplier, Name: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, e.parties.Create(context.Background(), p))
	return p
}

func (e *env) stockOf(t *testing.T, productID string) decimal.Decimal {
	t.Helper()
	lvl, err := e.stock.Get(context.Background(), productID)
	require.NoError(t, err)
	return lvl.Quantity
}

func newDraft(t *testing.T, kind string) *order.Draft {
	t.Helper()
	d, err := order.NewDraft(kind, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return d
}

// failingTxRunner hace fallar la n-ésima inserción de línea dentro de la transacción real.
type failingTxRunner struct {
	inner  ordering.TxRunner
	failOn int
}

func (f *failingTxRunner) RunOrder(ctx context.Context, fn func(
	repository.OrderRepository,
	repository.StockRepository,
	repository.StockMovementRepository,
	repository.ProductRepository,
	repository.PartyRepository,
) error) error {
	return f.inner.RunOrder(ctx, func(
		o repository.OrderRepository,
		s repository.StockRepository,
		m repository.StockMovementRepository,
		p repository.ProductRepository,
		pa repository.PartyRepository,
	) error {
		return fn(&failingOrders{OrderRepository: o, failOn: f.failOn}, s, m, p, pa)
	})
}

type failingOrders struct {
	repository.OrderRepository
	failOn int
	calls  int
}

func (f *failingOrders) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	f.calls++
	if f.calls == f.failOn {
		return &domain.StorageError{Op: "insert order line", Err: errors.New("disco lleno")}
	}
	return f.OrderRepository.CreateLine(ctx, l)
}

// recordingNotifier guarda los eventos y opcionalmente falla.
type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.Event
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, ev ports.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return n.err
}
