package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, number, kind, date, party_id, party_name, party_phone, party_address, total_taxable, total_tax, total_amount, status, created_by, created_at`

// Create persiste la cabecera. Número repetido -> ErrDuplicateIdentifier (constraint único).
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Number, o.Kind, o.Date, nullIfEmpty(o.PartyID), o.PartyName, o.PartyPhone, o.PartyAddress,
		o.TotalTaxable, o.TotalTax, o.TotalAmount, o.Status, o.CreatedBy, o.CreatedAt,
	)
	return classify("insert order", err)
}

// CreateLine persiste una línea con sus montos derivados.
func (r *OrderRepo) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (id, order_id, position, product_id, description, quantity, unit_price, tax_rate, taxable_value, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.OrderID, l.Position, nullIfEmpty(l.ProductID), l.Description,
		l.Quantity, l.UnitPrice, l.TaxRate, l.TaxableValue, l.TaxAmount, l.LineTotal,
	)
	return classify("insert order line", err)
}

// GetByID obtiene una orden por ID (nil si no existe).
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByNumber obtiene una orden por su número legible (nil si no existe).
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE number = $1`, number)
}

func (r *OrderRepo) getOne(ctx context.Context, query string, arg string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if noRow(err) {
			return nil, nil
		}
		return nil, classify("get order", err)
	}
	return o, nil
}

// GetLines devuelve las líneas en orden de posición.
func (r *OrderRepo) GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, position, product_id, description, quantity, unit_price, tax_rate, taxable_value, tax_amount, line_total
		FROM order_lines WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, classify("list order lines", err)
	}
	defer rows.Close()

	var out []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		var productID *string
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Position, &productID, &l.Description,
			&l.Quantity, &l.UnitPrice, &l.TaxRate, &l.TaxableValue, &l.TaxAmount, &l.LineTotal); err != nil {
			return nil, classify("scan order line", err)
		}
		l.ProductID = derefStr(productID)
		out = append(out, &l)
	}
	return out, classify("list order lines", rows.Err())
}

// LastNumber mayor número de la serie: a igual prefijo gana el más largo (PO10000 > PO9999).
// Solo considera números con dígitos puros tras el prefijo (INV2024-0001 no es de la serie INV).
func (r *OrderRepo) LastNumber(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT number FROM orders
		WHERE number LIKE $1 ESCAPE '\'
		  AND substr(number, $2) ~ '^[0-9]+$'
		ORDER BY length(number) DESC, number DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query, likePrefix(prefix), len([]rune(prefix))+1).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", classify("last order number", err)
	}
	return number, nil
}

// List órdenes en [From, To] (y de los tipos, si se indican) ordenadas por fecha y número.
// Un slice nil llega como NULL, de ahí el coalesce.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE date BETWEEN $1 AND $2
		  AND (coalesce(cardinality($3::text[]), 0) = 0 OR kind = ANY($3::text[]))
		ORDER BY date, number`
	rows, err := r.q.Query(ctx, query, f.From, f.To, f.Kinds)
	if err != nil {
		return nil, classify("list orders", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, classify("scan order", err)
		}
		out = append(out, o)
	}
	return out, classify("list orders", rows.Err())
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var partyID *string
	if err := row.Scan(&o.ID, &o.Number, &o.Kind, &o.Date, &partyID, &o.PartyName, &o.PartyPhone, &o.PartyAddress,
		&o.TotalTaxable, &o.TotalTax, &o.TotalAmount, &o.Status, &o.CreatedBy, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.PartyID = derefStr(partyID)
	return &o, nil
}
