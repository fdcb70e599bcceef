package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Category     string
	UnitPrice    decimal.Decimal // precio de referencia
	TaxRate      decimal.Decimal // porcentaje, ej. 18
	ReorderLevel decimal.Decimal // umbral de stock bajo
	CreatedAt    time.Time
}
