package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos sobre gorm.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto. SKU repetido -> ErrDuplicateIdentifier.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	m := productModel{
		ID: p.ID, SKU: p.SKU, Name: p.Name, Category: p.Category,
		UnitPrice: p.UnitPrice, TaxRate: p.TaxRate, ReorderLevel: p.ReorderLevel,
		CreatedAt: p.CreatedAt,
	}
	return classify("insert product", r.db.WithContext(ctx).Create(&m).Error)
}

// Update reescribe los campos editables; SKU e ID no cambian.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":          p.Name,
		"category":      p.Category,
		"unit_price":    p.UnitPrice,
		"tax_rate":      p.TaxRate,
		"reorder_level": p.ReorderLevel,
	})
	if res.Error != nil {
		return classify("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBySKU nil si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.first(ctx, "sku = ?", sku)
}

func (r *ProductRepo) first(ctx context.Context, cond string, arg any) (*entity.Product, error) {
	var m productModel
	err := r.db.WithContext(ctx).Where(cond, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get product", err)
	}
	return productFromModel(&m), nil
}

// List productos por SKU.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).Order("sku").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, classify("list products", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, productFromModel(&rows[i]))
	}
	return out, nil
}
