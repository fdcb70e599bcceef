package postgres

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, category, unit_price, tax_rate, reorder_level, created_at`

// Create persiste un nuevo producto. SKU repetido -> ErrDuplicateIdentifier.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, p.ID, p.SKU, p.Name, p.Category, p.UnitPrice, p.TaxRate, p.ReorderLevel, p.CreatedAt)
	return classify("insert product", err)
}

// Update reescribe los campos editables; SKU e ID no cambian.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if !isUUID(p.ID) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE products
		SET name = $2, category = $3, unit_price = $4, tax_rate = $5, reorder_level = $6
		WHERE id = $1`,
		p.ID, p.Name, p.Category, p.UnitPrice, p.TaxRate, p.ReorderLevel,
	)
	if err != nil {
		return classify("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

func (r *ProductRepo) getOne(ctx context.Context, query, arg string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.UnitPrice, &p.TaxRate, &p.ReorderLevel, &p.CreatedAt,
	)
	if err != nil {
		if noRow(err) {
			return nil, nil
		}
		return nil, classify("get product", err)
	}
	return &p, nil
}

// List lista productos ordenados por SKU.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY sku LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, classify("list products", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.UnitPrice, &p.TaxRate, &p.ReorderLevel, &p.CreatedAt); err != nil {
			return nil, classify("scan product", err)
		}
		out = append(out, &p)
	}
	return out, classify("list products", rows.Err())
}
