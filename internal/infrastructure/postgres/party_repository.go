package postgres

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo clientes y proveedores sobre PostgreSQL.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

const partyColumns = `id, kind, name, tax_id, phone, email, address, created_at`

// Create persiste un tercero.
func (r *PartyRepo) Create(ctx context.Context, p *entity.Party) error {
	query := `INSERT INTO parties (` + partyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Kind, p.Name, p.TaxID, p.Phone, p.Email, p.Address, p.CreatedAt)
	return classify("insert party", err)
}

// GetByID obtiene un tercero (nil si no existe).
func (r *PartyRepo) GetByID(ctx context.Context, id string) (*entity.Party, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var p entity.Party
	err := r.q.QueryRow(ctx, `SELECT `+partyColumns+` FROM parties WHERE id = $1`, id).Scan(
		&p.ID, &p.Kind, &p.Name, &p.TaxID, &p.Phone, &p.Email, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if noRow(err) {
			return nil, nil
		}
		return nil, classify("get party", err)
	}
	return &p, nil
}

// List lista terceros por nombre; kind vacío = todos.
func (r *PartyRepo) List(ctx context.Context, kind string, limit, offset int) ([]*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE ($1 = '' OR kind = $1) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, classify("list parties", err)
	}
	defer rows.Close()

	var out []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(&p.ID, &p.Kind, &p.Name, &p.TaxID, &p.Phone, &p.Email, &p.Address, &p.CreatedAt); err != nil {
			return nil, classify("scan party", err)
		}
		out = append(out, &p)
	}
	return out, classify("list parties", rows.Err())
}
