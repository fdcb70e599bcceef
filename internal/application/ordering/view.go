package ordering

import (
	"time"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/order"
)

// OrderView cabecera más líneas de una orden confirmada.
type OrderView struct {
	Order *entity.Order
	Lines []*entity.OrderLine
}

// ToResponse convierte la vista en el DTO HTTP (montos con dos decimales).
func (v *OrderView) ToResponse() dto.OrderResponse {
	o := v.Order
	resp := dto.OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		Kind:         o.Kind,
		Date:         o.Date.Format(time.DateOnly),
		PartyID:      o.PartyID,
		PartyName:    o.PartyName,
		PartyPhone:   o.PartyPhone,
		PartyAddress: o.PartyAddress,
		Status:       o.Status,
		TotalTaxable: o.TotalTaxable.StringFixed(2),
		TotalTax:     o.TotalTax.StringFixed(2),
		TotalAmount:  o.TotalAmount.StringFixed(2),
		CreatedBy:    o.CreatedBy,
		Lines:        make([]dto.OrderLineResponse, 0, len(v.Lines)),
	}
	if !o.CreatedAt.IsZero() {
		resp.CreatedAt = o.CreatedAt.UTC().Format(time.RFC3339)
	}
	for _, l := range v.Lines {
		resp.Lines = append(resp.Lines, lineResponse(l))
	}
	return resp
}

// DraftResponse vista previa de un borrador: nada se persiste.
func DraftResponse(d *order.Draft) dto.OrderResponse {
	lines, totals := d.Snapshot()
	resp := dto.OrderResponse{
		Number:       d.Number,
		Kind:         d.Kind,
		Date:         d.Date.Format(time.DateOnly),
		PartyID:      d.PartyID,
		PartyName:    d.PartyName,
		PartyPhone:   d.PartyPhone,
		PartyAddress: d.PartyAddress,
		Status:       entity.OrderStatusDraft,
		TotalTaxable: totals.Taxable.StringFixed(2),
		TotalTax:     totals.Tax.StringFixed(2),
		TotalAmount:  totals.Total.StringFixed(2),
		Lines:        make([]dto.OrderLineResponse, 0, len(lines)),
	}
	for i := range lines {
		resp.Lines = append(resp.Lines, lineResponse(&lines[i]))
	}
	return resp
}

func lineResponse(l *entity.OrderLine) dto.OrderLineResponse {
	return dto.OrderLineResponse{
		Position:     l.Position,
		ProductID:    l.ProductID,
		Description:  l.Description,
		Quantity:     l.Quantity.String(),
		UnitPrice:    l.UnitPrice.StringFixed(2),
		TaxRate:      l.TaxRate.String(),
		TaxableValue: l.TaxableValue.StringFixed(2),
		TaxAmount:    l.TaxAmount.StringFixed(2),
		LineTotal:    l.LineTotal.StringFixed(2),
	}
}
