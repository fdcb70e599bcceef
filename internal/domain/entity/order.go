package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden soportados. Cada tipo define su prefijo de numeración y su efecto sobre el stock.
const (
	OrderKindInvoice    = "INVOICE"     // factura de venta sin movimiento de inventario
	OrderKindPurchase   = "PURCHASE"    // orden de compra a proveedor: suma stock
	OrderKindSale       = "SALE"        // venta POS / tienda: resta stock
	OrderKindCreditNote = "CREDIT_NOTE" // nota crédito: cantidades negativas, devuelve stock
)

// Estados de la orden. PERSISTED es terminal: las correcciones se hacen con nuevas órdenes.
const (
	OrderStatusDraft     = "DRAFT"
	OrderStatusPersisted = "PERSISTED"
)

// OrderKinds lista los tipos válidos en orden estable.
var OrderKinds = []string{OrderKindInvoice, OrderKindPurchase, OrderKindSale, OrderKindCreditNote}

// Order representa la cabecera de una transacción comercial (factura, compra, venta, nota crédito).
type Order struct {
	ID           string
	Number       string // identificador legible, único (ej. PO0008)
	Kind         string
	Date         time.Time
	PartyID      string // cliente o proveedor; vacío si el tipo lo permite
	PartyName    string // copia del nombre al momento de confirmar
	PartyPhone   string // copia del teléfono (cliente de mostrador o tercero registrado)
	PartyAddress string
	TotalTaxable decimal.Decimal
	TotalTax     decimal.Decimal
	TotalAmount  decimal.Decimal
	Status       string
	CreatedBy    string
	CreatedAt    time.Time
}

// DefaultPrefix prefijo de numeración por defecto de cada tipo.
func DefaultPrefix(kind string) string {
	switch kind {
	case OrderKindInvoice:
		return "INV"
	case OrderKindPurchase:
		return "PO"
	case OrderKindSale:
		return "SO"
	case OrderKindCreditNote:
		return "NC"
	}
	return ""
}

// SalesKinds tipos que cuentan como venta; la nota crédito resta del total.
var SalesKinds = []string{OrderKindInvoice, OrderKindSale, OrderKindCreditNote}

// ValidOrderKind indica si kind es uno de los tipos soportados.
func ValidOrderKind(kind string) bool {
	for _, k := range OrderKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// StockSign devuelve el signo con el que cada línea afecta el stock: +1, -1 o 0.
func StockSign(kind string) int64 {
	switch kind {
	case OrderKindPurchase:
		return 1
	case OrderKindSale, OrderKindCreditNote:
		return -1
	default:
		return 0
	}
}

// AllowsNegativeQuantity indica si el tipo acepta cantidades negativas (devoluciones).
func AllowsNegativeQuantity(kind string) bool {
	return kind == OrderKindCreditNote
}

// RequiresParty indica si el tipo exige un tercero registrado.
func RequiresParty(kind string) bool {
	return kind == OrderKindPurchase
}
