package entity

import "time"

// Tipos de tercero.
const (
	PartyKindCustomer = "CUSTOMER"
	PartyKindSupplier = "SUPPLIER"
)

// Party representa un cliente o un proveedor.
type Party struct {
	ID        string
	Kind      string
	Name      string
	TaxID     string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
