package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ ordering.TxRunner  = (*TxRunner)(nil)
)

// TxRunner transacciones gorm: commit si fn retorna nil, rollback en otro caso.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run transacción para ajustes de inventario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.inTx(ctx, func(tx *gorm.DB) error {
		return fn(NewStockRepository(tx), NewStockMovementRepository(tx), NewProductRepository(tx))
	})
}

// RunOrder transacción para confirmar una orden.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	partyRepo repository.PartyRepository,
) error) error {
	return r.inTx(ctx, func(tx *gorm.DB) error {
		return fn(
			NewOrderRepository(tx),
			NewStockRepository(tx),
			NewStockMovementRepository(tx),
			NewProductRepository(tx),
			NewPartyRepository(tx),
		)
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(fn)
	if err != nil && !domain.IsDomainError(err) {
		return &domain.StorageError{Op: "transaction", Err: err}
	}
	return err
}
