package entity

import "github.com/shopspring/decimal"

// OrderLine representa una línea de detalle de una orden.
// TaxableValue, TaxAmount y LineTotal son derivados: solo los produce el paquete money.
type OrderLine struct {
	ID           string
	OrderID      string
	Position     int
	ProductID    string // opcional en facturas de servicios
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TaxRate      decimal.Decimal // porcentaje, ej. 18 = 18%
	TaxableValue decimal.Decimal
	TaxAmount    decimal.Decimal
	LineTotal    decimal.Decimal
}
