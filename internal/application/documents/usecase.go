// Package documents genera PDF y hojas de cálculo a partir de órdenes ya confirmadas.
// Una falla al renderizar solo afecta la descarga: nunca toca datos persistidos.
package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// UseCase arma los datos de cada documento y delega en los renderizadores.
type UseCase struct {
	query     *ordering.QueryUseCase
	reports   *ordering.ReportUseCase
	partyRepo repository.PartyRepository
	products  repository.ProductRepository
	stock     repository.StockRepository
	pdf       OrderPDFRenderer
	sheets    SpreadsheetRenderer
	company   entity.Company
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	query *ordering.QueryUseCase,
	reports *ordering.ReportUseCase,
	partyRepo repository.PartyRepository,
	products repository.ProductRepository,
	stock repository.StockRepository,
	pdf OrderPDFRenderer,
	sheets SpreadsheetRenderer,
	company entity.Company,
) *UseCase {
	return &UseCase{
		query:     query,
		reports:   reports,
		partyRepo: partyRepo,
		products:  products,
		stock:     stock,
		pdf:       pdf,
		sheets:    sheets,
		company:   company,
	}
}

// OrderPDF devuelve el PDF de la orden y el nombre de archivo sugerido.
func (uc *UseCase) OrderPDF(ctx context.Context, number string) ([]byte, string, error) {
	doc, err := uc.load(ctx, number)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.RenderOrderPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return b, fileName(doc.Order, "pdf"), nil
}

// OrderXLSX devuelve la orden exportada a hoja de cálculo.
func (uc *UseCase) OrderXLSX(ctx context.Context, number string) ([]byte, string, error) {
	doc, err := uc.load(ctx, number)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.sheets.RenderOrderXLSX(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("xlsx: generación fallida: %w", err)
	}
	return b, fileName(doc.Order, "xlsx"), nil
}

// SalesXLSX exporta el reporte de ventas del filtro.
func (uc *UseCase) SalesXLSX(ctx context.Context, f repository.OrderFilter) ([]byte, string, error) {
	report, err := uc.reports.Sales(ctx, f)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.sheets.RenderSalesXLSX(ctx, uc.company, report)
	if err != nil {
		return nil, "", fmt.Errorf("xlsx: generación fallida: %w", err)
	}
	name := fmt.Sprintf("ventas_%s_%s.xlsx", f.From.Format(time.DateOnly), f.To.Format(time.DateOnly))
	return b, name, nil
}

// productsPage tamaño de página al recorrer el catálogo completo.
const productsPage = 100

// ProductsXLSX exporta el catálogo completo con la existencia actual de cada producto.
func (uc *UseCase) ProductsXLSX(ctx context.Context, now time.Time) ([]byte, string, error) {
	var rows []ProductStock
	for offset := 0; ; offset += productsPage {
		page, err := uc.products.List(ctx, productsPage, offset)
		if err != nil {
			return nil, "", domain.AsStorage("listar productos", err)
		}
		for _, p := range page {
			level, err := uc.stock.Get(ctx, p.ID)
			if err != nil {
				return nil, "", domain.AsStorage("consultar existencia", err)
			}
			rows = append(rows, ProductStock{Product: p, Quantity: level.Quantity})
		}
		if len(page) < productsPage {
			break
		}
	}
	b, err := uc.sheets.RenderProductsXLSX(ctx, uc.company, rows)
	if err != nil {
		return nil, "", fmt.Errorf("xlsx: generación fallida: %w", err)
	}
	return b, fmt.Sprintf("productos_%s.xlsx", now.Format("20060102")), nil
}

func (uc *UseCase) load(ctx context.Context, number string) (OrderDocument, error) {
	view, err := uc.query.GetByNumber(ctx, number)
	if err != nil {
		return OrderDocument{}, err
	}
	doc := OrderDocument{Company: uc.company, Order: view.Order, Lines: view.Lines}
	if view.Order.PartyID != "" {
		party, err := uc.partyRepo.GetByID(ctx, view.Order.PartyID)
		if err != nil {
			return OrderDocument{}, domain.AsStorage("buscar tercero", err)
		}
		doc.Party = party
	}
	return doc, nil
}

func fileName(o *entity.Order, ext string) string {
	return fmt.Sprintf("%s_%s.%s", strings.ToLower(o.Kind), o.Number, ext)
}
