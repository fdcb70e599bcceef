package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa la existencia actual de un producto.
// Siempre igual a la suma de sus StockMovement.
type StockLevel struct {
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
