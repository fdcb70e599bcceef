package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// Los montos se guardan como TEXT: SQLite no tiene decimal exacto y NUMERIC los convertiría a REAL.
// La aritmética sobre ellos se hace en Go con shopspring/decimal.

type productModel struct {
	ID           string          `gorm:"primaryKey;type:text"`
	SKU          string          `gorm:"uniqueIndex;not null"`
	Name         string          `gorm:"not null"`
	Category     string          `gorm:"not null;default:''"`
	UnitPrice    decimal.Decimal `gorm:"type:text;not null"`
	TaxRate      decimal.Decimal `gorm:"type:text;not null"`
	ReorderLevel decimal.Decimal `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (productModel) TableName() string { return "products" }

type partyModel struct {
	ID        string `gorm:"primaryKey;type:text"`
	Kind      string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	TaxID     string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}

func (partyModel) TableName() string { return "parties" }

type orderModel struct {
	ID           string          `gorm:"primaryKey;type:text"`
	Number       string          `gorm:"uniqueIndex;not null"`
	Kind         string          `gorm:"index;not null"`
	Date         string          `gorm:"index;not null"` // YYYY-MM-DD
	PartyID      *string         `gorm:"type:text"`
	PartyName    string          `gorm:"not null;default:''"`
	PartyPhone   string          `gorm:"not null;default:''"`
	PartyAddress string          `gorm:"not null;default:''"`
	TotalTaxable decimal.Decimal `gorm:"type:text;not null"`
	TotalTax     decimal.Decimal `gorm:"type:text;not null"`
	TotalAmount  decimal.Decimal `gorm:"type:text;not null"`
	Status       string          `gorm:"not null"`
	CreatedBy    string          `gorm:"not null;default:''"`
	CreatedAt    time.Time
}

func (orderModel) TableName() string { return "orders" }

type orderLineModel struct {
	ID           string          `gorm:"primaryKey;type:text"`
	OrderID      string          `gorm:"index;not null"`
	Position     int             `gorm:"not null"`
	ProductID    *string         `gorm:"type:text"`
	Description  string          `gorm:"not null"`
	Quantity     decimal.Decimal `gorm:"type:text;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:text;not null"`
	TaxRate      decimal.Decimal `gorm:"type:text;not null"`
	TaxableValue decimal.Decimal `gorm:"type:text;not null"`
	TaxAmount    decimal.Decimal `gorm:"type:text;not null"`
	LineTotal    decimal.Decimal `gorm:"type:text;not null"`
}

func (orderLineModel) TableName() string { return "order_lines" }

type stockLevelModel struct {
	ProductID string          `gorm:"primaryKey;type:text"`
	Quantity  decimal.Decimal `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (stockLevelModel) TableName() string { return "stock_levels" }

type stockMovementModel struct {
	ID        string          `gorm:"primaryKey;type:text"`
	ProductID string          `gorm:"index;not null"`
	OrderID   *string         `gorm:"index;type:text"`
	Quantity  decimal.Decimal `gorm:"type:text;not null"`
	Reason    string          `gorm:"not null"`
	CreatedAt time.Time
	CreatedBy string `gorm:"not null;default:''"`
}

func (stockMovementModel) TableName() string { return "stock_movements" }

func allModels() []any {
	return []any{
		&productModel{}, &partyModel{}, &orderModel{}, &orderLineModel{},
		&stockLevelModel{}, &stockMovementModel{},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func productFromModel(m *productModel) *entity.Product {
	return &entity.Product{
		ID: m.ID, SKU: m.SKU, Name: m.Name, Category: m.Category,
		UnitPrice: m.UnitPrice, TaxRate: m.TaxRate, ReorderLevel: m.ReorderLevel,
		CreatedAt: m.CreatedAt,
	}
}

func partyFromModel(m *partyModel) *entity.Party {
	return &entity.Party{
		ID: m.ID, Kind: m.Kind, Name: m.Name, TaxID: m.TaxID,
		Phone: m.Phone, Email: m.Email, Address: m.Address, CreatedAt: m.CreatedAt,
	}
}

func orderFromModel(m *orderModel) *entity.Order {
	date, _ := time.Parse(time.DateOnly, m.Date)
	return &entity.Order{
		ID: m.ID, Number: m.Number, Kind: m.Kind, Date: date,
		PartyID: deref(m.PartyID), PartyName: m.PartyName,
		PartyPhone: m.PartyPhone, PartyAddress: m.PartyAddress,
		TotalTaxable: m.TotalTaxable, TotalTax: m.TotalTax, TotalAmount: m.TotalAmount,
		Status: m.Status, CreatedBy: m.CreatedBy, CreatedAt: m.CreatedAt,
	}
}

func lineFromModel(m *orderLineModel) *entity.OrderLine {
	return &entity.OrderLine{
		ID: m.ID, OrderID: m.OrderID, Position: m.Position, ProductID: deref(m.ProductID),
		Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, TaxRate: m.TaxRate,
		TaxableValue: m.TaxableValue, TaxAmount: m.TaxAmount, LineTotal: m.LineTotal,
	}
}

func movementFromModel(m *stockMovementModel) *entity.StockMovement {
	return &entity.StockMovement{
		ID: m.ID, ProductID: m.ProductID, OrderID: deref(m.OrderID), Quantity: m.Quantity,
		Reason: m.Reason, CreatedAt: m.CreatedAt, CreatedBy: m.CreatedBy,
	}
}
