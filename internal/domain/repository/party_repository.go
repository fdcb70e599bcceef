package repository

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// PartyRepository define el puerto de persistencia para clientes y proveedores.
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id string) (*entity.Party, error)
	List(ctx context.Context, kind string, limit, offset int) ([]*entity.Party, error)
}
