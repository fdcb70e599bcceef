package ordering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/order"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// DraftBuilder arma un order.Draft a partir del request, completando descripción, precio y
// tasa desde el catálogo cuando la línea referencia un producto y el campo viene vacío.
type DraftBuilder struct {
	productRepo repository.ProductRepository
	partyRepo   repository.PartyRepository
}

// NewDraftBuilder construye el armador de borradores.
func NewDraftBuilder(productRepo repository.ProductRepository, partyRepo repository.PartyRepository) *DraftBuilder {
	return &DraftBuilder{productRepo: productRepo, partyRepo: partyRepo}
}

// Build valida cada línea con las mismas reglas del colector; la primera línea inválida
// devuelve un ValidationError con su posición.
func (b *DraftBuilder) Build(ctx context.Context, in dto.CreateOrderRequest) (*order.Draft, error) {
	date := time.Now().UTC()
	if s := strings.TrimSpace(in.Date); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, domain.NewValidationError("date", "debe tener formato YYYY-MM-DD")
		}
		date = parsed
	}

	d, err := order.NewDraft(strings.ToUpper(strings.TrimSpace(in.Kind)), date)
	if err != nil {
		return nil, err
	}
	d.Number = in.Number
	d.PartyID = strings.TrimSpace(in.PartyID)

	if d.PartyID != "" {
		party, err := b.partyRepo.GetByID(ctx, d.PartyID)
		if err != nil {
			return nil, domain.AsStorage("buscar tercero", err)
		}
		if party == nil {
			return nil, &domain.ReferenceError{Entity: "party", ID: d.PartyID}
		}
		d.PartyName = party.Name
		d.PartyPhone = party.Phone
		d.PartyAddress = party.Address
	} else {
		d.PartyName = strings.TrimSpace(in.PartyName)
		d.PartyPhone = strings.TrimSpace(in.PartyPhone)
		d.PartyAddress = strings.TrimSpace(in.PartyAddress)
	}

	products := make(map[string]*entity.Product)
	for i, item := range in.Items {
		description := item.Description
		price, rate := item.UnitPrice.String(), item.TaxRate.String()

		productID := strings.TrimSpace(item.ProductID)
		if productID != "" {
			p, ok := products[productID]
			if !ok {
				p, err = b.productRepo.GetByID(ctx, productID)
				if err != nil {
					return nil, domain.AsStorage("buscar producto", err)
				}
				if p == nil {
					return nil, &domain.ReferenceError{Entity: "product", ID: productID}
				}
				products[productID] = p
			}
			if strings.TrimSpace(description) == "" {
				description = p.Name
			}
			if item.UnitPrice.Empty() {
				price = p.UnitPrice.StringFixed(2)
			}
			if item.TaxRate.Empty() {
				rate = p.TaxRate.String()
			}
		}
		if item.TaxRate.Empty() && productID == "" {
			rate = "0"
		}

		if _, err := d.AddProduct(productID, description, item.Quantity.String(), price, rate); err != nil {
			return nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
	}
	return d, nil
}
