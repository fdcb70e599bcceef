package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia actual; cero si el producto nunca tuvo movimientos.
func (r *StockRepo) Get(ctx context.Context, productID string) (*entity.StockLevel, error) {
	var s entity.StockLevel
	err := r.q.QueryRow(ctx,
		`SELECT product_id, quantity, updated_at FROM stock_levels WHERE product_id = $1`, productID,
	).Scan(&s.ProductID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if noRow(err) {
			return &entity.StockLevel{ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, classify("get stock", err)
	}
	return &s, nil
}

// ApplyDelta incremento atómico en una sola sentencia: la fila queda bloqueada hasta el fin de la tx,
// así dos confirmaciones concurrentes nunca pisan la cantidad leída por la otra.
func (r *StockRepo) ApplyDelta(ctx context.Context, productID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		INSERT INTO stock_levels (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING quantity`
	var qty decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, delta).Scan(&qty); err != nil {
		return decimal.Zero, classify("apply stock delta", err)
	}
	return qty, nil
}

// ListLow productos con existencia <= nivel de reorden (sin fila de stock cuenta como cero).
func (r *StockRepo) ListLow(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(s.quantity, 0), p.reorder_level
		FROM products p
		LEFT JOIN stock_levels s ON s.product_id = p.id
		WHERE COALESCE(s.quantity, 0) <= p.reorder_level
		ORDER BY p.sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, classify("list low stock", err)
	}
	defer rows.Close()

	var out []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.Name, &it.Quantity, &it.ReorderLevel); err != nil {
			return nil, classify("scan low stock", err)
		}
		out = append(out, it)
	}
	return out, classify("list low stock", rows.Err())
}
