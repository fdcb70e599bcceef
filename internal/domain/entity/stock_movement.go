package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement es una entrada del historial de inventario (delta con signo).
type StockMovement struct {
	ID        string
	ProductID string
	OrderID   string          // vacío en ajustes manuales
	Quantity  decimal.Decimal // positivo entrada, negativo salida
	Reason    string          // número de la orden o motivo del ajuste
	CreatedAt time.Time
	CreatedBy string
}
