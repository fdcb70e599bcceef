package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// OrderFilter criterios para listar órdenes (reporte de ventas por rango de fechas).
type OrderFilter struct {
	Kinds []string // vacío = todos los tipos
	From  time.Time
	To    time.Time
}

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Create devuelve domain.ErrDuplicateIdentifier si el número ya existe.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateLine(ctx context.Context, line *entity.OrderLine) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByNumber(ctx context.Context, number string) (*entity.Order, error)
	GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error)
	// LastNumber devuelve el mayor número existente con el prefijo dado ("" si no hay ninguno).
	LastNumber(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}
