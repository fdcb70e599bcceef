package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo historial de inventario (solo inserción).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, order_id, quantity, reason, created_at, created_by`

// Create registra un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `INSERT INTO stock_movements (` + movementColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, m.ID, m.ProductID, nullIfEmpty(m.OrderID), m.Quantity, m.Reason, m.CreatedAt, m.CreatedBy)
	return classify("insert stock movement", err)
}

// ListByProduct historial del producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+movementColumns+` FROM stock_movements WHERE product_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, classify("list movements", err)
	}
	return collectMovements(rows)
}

// ListByOrder movimientos generados por una orden.
func (r *StockMovementRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+movementColumns+` FROM stock_movements WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, classify("list movements", err)
	}
	return collectMovements(rows)
}

// SumByProduct suma de todos los deltas del producto.
func (r *StockMovementRepo) SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM stock_movements WHERE product_id = $1`, productID).Scan(&sum)
	if err != nil {
		if noRow(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, classify("sum movements", err)
	}
	return sum, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var orderID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &orderID, &m.Quantity, &m.Reason, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, classify("scan movement", err)
		}
		m.OrderID = derefStr(orderID)
		out = append(out, &m)
	}
	return out, classify("list movements", rows.Err())
}
