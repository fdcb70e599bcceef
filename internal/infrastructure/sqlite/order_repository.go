package sqlite

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes y líneas sobre gorm. db puede ser la base o una transacción.
type OrderRepo struct {
	db *gorm.DB
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste la cabecera. Número repetido -> ErrDuplicateIdentifier.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	m := orderModel{
		ID:           o.ID,
		Number:       o.Number,
		Kind:         o.Kind,
		Date:         o.Date.Format(time.DateOnly),
		PartyID:      optional(o.PartyID),
		PartyName:    o.PartyName,
		PartyPhone:   o.PartyPhone,
		PartyAddress: o.PartyAddress,
		TotalTaxable: o.TotalTaxable,
		TotalTax:     o.TotalTax,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		CreatedBy:    o.CreatedBy,
		CreatedAt:    o.CreatedAt,
	}
	return classify("insert order", r.db.WithContext(ctx).Create(&m).Error)
}

// CreateLine persiste una línea.
func (r *OrderRepo) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	m := orderLineModel{
		ID:           l.ID,
		OrderID:      l.OrderID,
		Position:     l.Position,
		ProductID:    optional(l.ProductID),
		Description:  l.Description,
		Quantity:     l.Quantity,
		UnitPrice:    l.UnitPrice,
		TaxRate:      l.TaxRate,
		TaxableValue: l.TaxableValue,
		TaxAmount:    l.TaxAmount,
		LineTotal:    l.LineTotal,
	}
	return classify("insert order line", r.db.WithContext(ctx).Create(&m).Error)
}

// GetByID obtiene una orden (nil si no existe).
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByNumber obtiene una orden por número (nil si no existe).
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return r.first(ctx, "number = ?", number)
}

func (r *OrderRepo) first(ctx context.Context, cond string, arg any) (*entity.Order, error) {
	var m orderModel
	err := r.db.WithContext(ctx).Where(cond, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get order", err)
	}
	return orderFromModel(&m), nil
}

// GetLines líneas por posición.
func (r *OrderRepo) GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	var rows []orderLineModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("position").Find(&rows).Error; err != nil {
		return nil, classify("list order lines", err)
	}
	out := make([]*entity.OrderLine, 0, len(rows))
	for i := range rows {
		out = append(out, lineFromModel(&rows[i]))
	}
	return out, nil
}

// LastNumber mayor número de la serie (el más largo gana, luego orden lexicográfico).
// Solo cuenta números con dígitos puros tras el prefijo: INV2024-0001 no pertenece a la serie INV.
// GLOB distingue mayúsculas, a diferencia de LIKE en SQLite.
func (r *OrderRepo) LastNumber(ctx context.Context, prefix string) (string, error) {
	var m orderModel
	p := globEscape(prefix)
	err := r.db.WithContext(ctx).
		Select("number").
		Where("number GLOB ?", p+"[0-9]*").
		Where("number NOT GLOB ?", p+"*[^0-9]*").
		Order("length(number) DESC").
		Order("number DESC").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", classify("last order number", err)
	}
	return m.Number, nil
}

// List órdenes en [From, To] comparando la fecha como texto YYYY-MM-DD.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	q := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", f.From.Format(time.DateOnly), f.To.Format(time.DateOnly))
	if len(f.Kinds) > 0 {
		q = q.Where("kind IN ?", f.Kinds)
	}
	var rows []orderModel
	if err := q.Order("date").Order("number").Find(&rows).Error; err != nil {
		return nil, classify("list orders", err)
	}
	out := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		out = append(out, orderFromModel(&rows[i]))
	}
	return out, nil
}

func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']':
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteByte(']')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
