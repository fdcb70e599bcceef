// Package catalog casos de uso de productos y terceros (clientes / proveedores).
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/money"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/pkg/nit"
)

// UseCase alta y consulta del catálogo. La existencia no se toca aquí: solo vía órdenes y ajustes.
type UseCase struct {
	products repository.ProductRepository
	parties  repository.PartyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, parties repository.PartyRepository) *UseCase {
	return &UseCase{products: products, parties: parties}
}

// CreateProduct crea un producto. SKU repetido -> ErrDuplicateIdentifier.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	if sku == "" {
		return nil, domain.NewValidationError("sku", "es obligatorio")
	}
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	price, err := money.NewUnitPrice(in.UnitPrice.String())
	if err != nil {
		return nil, err
	}
	rate, err := money.NewTaxRate(in.TaxRate.String())
	if err != nil {
		return nil, err
	}
	reorder := decimal.Zero
	if !in.ReorderLevel.Empty() {
		if reorder, err = money.NewQuantity(in.ReorderLevel.String()); err != nil {
			return nil, err
		}
	}

	existing, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, domain.AsStorage("buscar sku", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateIdentifier
	}

	p := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         name,
		Category:     strings.TrimSpace(in.Category),
		UnitPrice:    price,
		TaxRate:      rate,
		ReorderLevel: reorder,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, domain.AsStorage("crear producto", err)
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// GetProduct obtiene un producto; ErrNotFound si no existe.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, domain.AsStorage("buscar producto", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// UpdateProduct corrige nombre, categoría, precio, tasa o nivel de reorden. Las órdenes ya
// confirmadas conservan los valores con que se registraron.
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, domain.AsStorage("buscar producto", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		p.Name = name
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if !in.UnitPrice.Empty() {
		if p.UnitPrice, err = money.NewUnitPrice(in.UnitPrice.String()); err != nil {
			return nil, err
		}
	}
	if !in.TaxRate.Empty() {
		if p.TaxRate, err = money.NewTaxRate(in.TaxRate.String()); err != nil {
			return nil, err
		}
	}
	if !in.ReorderLevel.Empty() {
		if p.ReorderLevel, err = money.NewQuantity(in.ReorderLevel.String()); err != nil {
			return nil, err
		}
	}

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, domain.AsStorage("actualizar producto", err)
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// ListProducts lista productos con paginación.
func (uc *UseCase) ListProducts(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.products.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.AsStorage("listar productos", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// CreateParty crea un cliente o proveedor.
func (uc *UseCase) CreateParty(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	kind := strings.ToUpper(strings.TrimSpace(in.Kind))
	if kind != entity.PartyKindCustomer && kind != entity.PartyKindSupplier {
		return nil, domain.NewValidationError("kind", "debe ser CUSTOMER o SUPPLIER")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	taxID := strings.TrimSpace(in.TaxID)
	if err := nit.Validate(taxID); err != nil {
		return nil, domain.NewValidationError("tax_id", err.Error())
	}
	p := &entity.Party{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      name,
		TaxID:     taxID,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.parties.Create(ctx, p); err != nil {
		return nil, domain.AsStorage("crear tercero", err)
	}
	resp := toPartyResponse(p)
	return &resp, nil
}

// ListParties lista terceros; kind vacío = todos.
func (uc *UseCase) ListParties(ctx context.Context, kind string, page dto.PageRequest) (*dto.PartyListResponse, error) {
	page.DefaultPage()
	kind = strings.ToUpper(strings.TrimSpace(kind))
	list, err := uc.parties.List(ctx, kind, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.AsStorage("listar terceros", err)
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPartyResponse(p))
	}
	return &dto.PartyListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		UnitPrice:    p.UnitPrice.StringFixed(2),
		TaxRate:      p.TaxRate.String(),
		ReorderLevel: p.ReorderLevel.String(),
	}
}

func toPartyResponse(p *entity.Party) dto.PartyResponse {
	return dto.PartyResponse{
		ID:      p.ID,
		Kind:    p.Kind,
		Name:    p.Name,
		TaxID:   p.TaxID,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
	}
}
