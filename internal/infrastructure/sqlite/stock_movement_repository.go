package sqlite

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo historial de inventario sobre gorm.
type StockMovementRepo struct {
	db *gorm.DB
}

// NewStockMovementRepository construye el adaptador.
func NewStockMovementRepository(db *gorm.DB) *StockMovementRepo {
	return &StockMovementRepo{db: db}
}

// Create registra un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	row := stockMovementModel{
		ID: m.ID, ProductID: m.ProductID, OrderID: optional(m.OrderID), Quantity: m.Quantity,
		Reason: m.Reason, CreatedAt: m.CreatedAt, CreatedBy: m.CreatedBy,
	}
	return classify("insert stock movement", r.db.WithContext(ctx).Create(&row).Error)
}

// ListByProduct más reciente primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var rows []stockMovementModel
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("created_at DESC").Order("id").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, classify("list movements", err)
	}
	return toMovements(rows), nil
}

// ListByOrder movimientos de una orden.
func (r *StockMovementRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.StockMovement, error) {
	var rows []stockMovementModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at").Order("id").Find(&rows).Error; err != nil {
		return nil, classify("list movements", err)
	}
	return toMovements(rows), nil
}

// SumByProduct suma exacta en decimal (SUM de SQLite operaría en coma flotante).
func (r *StockMovementRepo) SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	var qtys []decimal.Decimal
	err := r.db.WithContext(ctx).Model(&stockMovementModel{}).
		Where("product_id = ?", productID).Pluck("quantity", &qtys).Error
	if err != nil {
		return decimal.Zero, classify("sum movements", err)
	}
	return decimal.Sum(decimal.Zero, qtys...), nil
}

func toMovements(rows []stockMovementModel) []*entity.StockMovement {
	out := make([]*entity.StockMovement, 0, len(rows))
	for i := range rows {
		out = append(out, movementFromModel(&rows[i]))
	}
	return out
}
