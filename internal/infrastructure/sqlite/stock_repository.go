package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo existencias sobre gorm.
type StockRepo struct {
	db *gorm.DB
}

// NewStockRepository construye el adaptador.
func NewStockRepository(db *gorm.DB) *StockRepo {
	return &StockRepo{db: db}
}

// Get existencia actual; cero si no hay fila.
func (r *StockRepo) Get(ctx context.Context, productID string) (*entity.StockLevel, error) {
	var m stockLevelModel
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.StockLevel{ProductID: productID, Quantity: decimal.Zero}, nil
	}
	if err != nil {
		return nil, classify("get stock", err)
	}
	return &entity.StockLevel{ProductID: m.ProductID, Quantity: m.Quantity, UpdatedAt: m.UpdatedAt}, nil
}

// ApplyDelta lee, suma en decimal y hace upsert. Es atómico porque el pool tiene una sola
// conexión y siempre se invoca dentro de una transacción: SQLite no intercala otro escritor.
func (r *StockRepo) ApplyDelta(ctx context.Context, productID string, delta decimal.Decimal) (decimal.Decimal, error) {
	current, err := r.Get(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	m := stockLevelModel{
		ProductID: productID,
		Quantity:  current.Quantity.Add(delta),
		UpdatedAt: time.Now().UTC(),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return decimal.Zero, classify("apply stock delta", err)
	}
	return m.Quantity, nil
}

// ListLow la comparación se hace en Go: las columnas son TEXT y compararlas en SQL sería lexicográfico.
func (r *StockRepo) ListLow(ctx context.Context) ([]repository.LowStockItem, error) {
	type row struct {
		ID           string
		SKU          string
		Name         string
		Quantity     *decimal.Decimal
		ReorderLevel decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("products p").
		Select("p.id, p.sku, p.name, s.quantity, p.reorder_level").
		Joins("LEFT JOIN stock_levels s ON s.product_id = p.id").
		Order("p.sku").
		Scan(&rows).Error
	if err != nil {
		return nil, classify("list low stock", err)
	}
	var out []repository.LowStockItem
	for _, it := range rows {
		qty := decimal.Zero
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		if qty.LessThanOrEqual(it.ReorderLevel) {
			out = append(out, repository.LowStockItem{
				ProductID: it.ID, SKU: it.SKU, Name: it.Name, Quantity: qty, ReorderLevel: it.ReorderLevel,
			})
		}
	}
	return out, nil
}
