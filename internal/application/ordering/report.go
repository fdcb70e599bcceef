package ordering

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/money"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// SalesReport órdenes de un rango de fechas con la suma de cada columna.
type SalesReport struct {
	Filter repository.OrderFilter
	Orders []*entity.Order
	Totals money.Amounts
}

// ReportUseCase reportes sobre órdenes confirmadas.
type ReportUseCase struct {
	orderRepo repository.OrderRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orderRepo repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo}
}

// ParseFilter interpreta el query HTTP. To es inclusivo (fin del día); sin fechas = mes en curso.
// Sin kind se incluyen solo los tipos de venta: las compras van únicamente si se piden.
func ParseFilter(in dto.SalesReportRequest, now time.Time) (repository.OrderFilter, error) {
	var f repository.OrderFilter
	kind := strings.ToUpper(strings.TrimSpace(in.Kind))
	switch {
	case kind == "":
		f.Kinds = append([]string(nil), entity.SalesKinds...)
	case entity.ValidOrderKind(kind):
		f.Kinds = []string{kind}
	default:
		return f, domain.NewValidationError("kind", "tipo de orden desconocido")
	}

	f.From = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if s := strings.TrimSpace(in.From); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return f, domain.NewValidationError("from", "debe tener formato YYYY-MM-DD")
		}
		f.From = t
	}
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if s := strings.TrimSpace(in.To); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return f, domain.NewValidationError("to", "debe tener formato YYYY-MM-DD")
		}
		to = t
	}
	f.To = to.Add(24*time.Hour - time.Nanosecond)
	return f, nil
}

// Sales lista las órdenes del filtro y suma sus totales almacenados.
func (uc *ReportUseCase) Sales(ctx context.Context, f repository.OrderFilter) (*SalesReport, error) {
	if f.To.Before(f.From) {
		return nil, domain.NewValidationError("to", "debe ser posterior a from")
	}
	orders, err := uc.orderRepo.List(ctx, f)
	if err != nil {
		return nil, domain.AsStorage("listar órdenes", err)
	}
	totals := money.Zero()
	for _, o := range orders {
		totals = totals.Add(money.Amounts{Taxable: o.TotalTaxable, Tax: o.TotalTax, Total: o.TotalAmount})
	}
	return &SalesReport{Filter: f, Orders: orders, Totals: totals}, nil
}

// ToResponse convierte el reporte en el DTO HTTP.
func (r *SalesReport) ToResponse() dto.SalesReportResponse {
	resp := dto.SalesReportResponse{
		From:         r.Filter.From.Format(time.DateOnly),
		To:           r.Filter.To.Format(time.DateOnly),
		Kind:         strings.Join(r.Filter.Kinds, ","),
		Count:        len(r.Orders),
		TotalTaxable: r.Totals.Taxable.StringFixed(2),
		TotalTax:     r.Totals.Tax.StringFixed(2),
		TotalAmount:  r.Totals.Total.StringFixed(2),
		Orders:       make([]dto.OrderSummary, 0, len(r.Orders)),
	}
	for _, o := range r.Orders {
		resp.Orders = append(resp.Orders, dto.OrderSummary{
			Number:       o.Number,
			Kind:         o.Kind,
			Date:         o.Date.Format(time.DateOnly),
			PartyName:    o.PartyName,
			TotalTaxable: o.TotalTaxable.StringFixed(2),
			TotalTax:     o.TotalTax.StringFixed(2),
			TotalAmount:  o.TotalAmount.StringFixed(2),
		})
	}
	return resp
}
