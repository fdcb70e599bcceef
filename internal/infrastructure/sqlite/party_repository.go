package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo terceros sobre gorm.
type PartyRepo struct {
	db *gorm.DB
}

// NewPartyRepository construye el adaptador.
func NewPartyRepository(db *gorm.DB) *PartyRepo {
	return &PartyRepo{db: db}
}

// Create persiste un tercero.
func (r *PartyRepo) Create(ctx context.Context, p *entity.Party) error {
	m := partyModel{
		ID: p.ID, Kind: p.Kind, Name: p.Name, TaxID: p.TaxID,
		Phone: p.Phone, Email: p.Email, Address: p.Address, CreatedAt: p.CreatedAt,
	}
	return classify("insert party", r.db.WithContext(ctx).Create(&m).Error)
}

// GetByID nil si no existe.
func (r *PartyRepo) GetByID(ctx context.Context, id string) (*entity.Party, error) {
	var m partyModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get party", err)
	}
	return partyFromModel(&m), nil
}

// List terceros por nombre; kind vacío = todos.
func (r *PartyRepo) List(ctx context.Context, kind string, limit, offset int) ([]*entity.Party, error) {
	q := r.db.WithContext(ctx)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var rows []partyModel
	if err := q.Order("name").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, classify("list parties", err)
	}
	out := make([]*entity.Party, 0, len(rows))
	for i := range rows {
		out = append(out, partyFromModel(&rows[i]))
	}
	return out, nil
}
