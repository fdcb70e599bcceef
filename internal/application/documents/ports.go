package documents

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// OrderDocument datos de entrada de los renderizadores. Los totales son los almacenados.
type OrderDocument struct {
	Company entity.Company
	Order   *entity.Order
	Lines   []*entity.OrderLine
	Party   *entity.Party // nil si la orden no tiene tercero
}

// ProductStock fila del catálogo exportado: el producto y su existencia actual.
type ProductStock struct {
	Product  *entity.Product
	Quantity decimal.Decimal
}

// OrderPDFRenderer genera la representación impresa de una orden confirmada.
type OrderPDFRenderer interface {
	RenderOrderPDF(ctx context.Context, doc OrderDocument) ([]byte, error)
}

// SpreadsheetRenderer exporta órdenes y reportes a .xlsx.
type SpreadsheetRenderer interface {
	RenderOrderXLSX(ctx context.Context, doc OrderDocument) ([]byte, error)
	RenderSalesXLSX(ctx context.Context, company entity.Company, report *ordering.SalesReport) ([]byte, error)
	RenderProductsXLSX(ctx context.Context, company entity.Company, rows []ProductStock) ([]byte, error)
}
