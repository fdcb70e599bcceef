package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del historial de inventario.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.StockMovement, error)
	// SumByProduct suma todos los deltas del producto (debe coincidir con su StockLevel).
	SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error)
}
