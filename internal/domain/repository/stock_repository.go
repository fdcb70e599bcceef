package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// LowStockItem producto con existencia menor o igual a su nivel de reorden.
type LowStockItem struct {
	ProductID    string
	SKU          string
	Name         string
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal
}

// StockRepository define el puerto para consultar y mover la existencia por producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve la existencia actual (cero si el producto nunca tuvo movimientos).
	Get(ctx context.Context, productID string) (*entity.StockLevel, error)
	// ApplyDelta suma delta de forma atómica (quantity = quantity + delta) y devuelve la nueva existencia.
	ApplyDelta(ctx context.Context, productID string, delta decimal.Decimal) (decimal.Decimal, error)
	ListLow(ctx context.Context) ([]LowStockItem, error)
}
