// Package spreadsheet exporta órdenes, reportes de ventas y el catálogo a archivos .xlsx.
package spreadsheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/money"
)

// Nombres de hoja.
const (
	SheetOrder    = "Orden"
	SheetSales    = "Ventas"
	SheetProducts = "Productos"
)

// formato numérico integrado de Excel "#,##0.00"
const numFmtMoney = 4

// ExcelRenderer implementa documents.SpreadsheetRenderer con excelize.
type ExcelRenderer struct{}

// NewExcelRenderer construye el renderizador.
func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

type styles struct {
	bold  int
	money int
	total int
}

func newWorkbook(sheet string) (*excelize.File, styles, error) {
	f := excelize.NewFile()
	var st styles
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, st, err
	}
	var err error
	if st.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, st, err
	}
	if st.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney}); err != nil {
		return nil, st, err
	}
	if st.total, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney, Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, st, err
	}
	return f, st, nil
}

// RenderOrderXLSX exporta cabecera, líneas y totales almacenados de la orden.
func (r *ExcelRenderer) RenderOrderXLSX(_ context.Context, doc documents.OrderDocument) ([]byte, error) {
	if doc.Order == nil {
		return nil, fmt.Errorf("xlsx: orden vacía")
	}
	f, st, err := newWorkbook(SheetOrder)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear libro: %w", err)
	}
	defer f.Close()

	w := &sheetWriter{f: f, sheet: SheetOrder}
	w.row(st.bold, doc.Company.Name)
	w.row(0, "NIT", doc.Company.TaxID)
	w.row(0, "Número", doc.Order.Number)
	w.row(0, "Tipo", doc.Order.Kind)
	w.row(0, "Fecha", doc.Order.Date.Format(time.DateOnly))
	w.row(0, "Tercero", partyName(doc))
	w.skip()

	w.row(st.bold, "#", "Descripción", "Cantidad", "Precio unit.", "Imp%", "Base", "Impuesto", "Total")
	for _, l := range doc.Lines {
		w.row(0, l.Position, l.Description, l.Quantity.InexactFloat64(), l.UnitPrice, l.TaxRate.InexactFloat64(),
			l.TaxableValue, l.TaxAmount, l.LineTotal)
		w.style(st.money, "D", "F", "G", "H")
	}
	w.skip()
	w.row(st.bold, "", "", "", "", "TOTALES", doc.Order.TotalTaxable, doc.Order.TotalTax, doc.Order.TotalAmount)
	w.style(st.total, "F", "G", "H")

	if w.err == nil {
		w.err = f.SetColWidth(SheetOrder, "B", "B", 40)
	}
	return finish(f, w.err)
}

// RenderSalesXLSX exporta el reporte de ventas: una fila por orden y la fila de totales.
func (r *ExcelRenderer) RenderSalesXLSX(_ context.Context, company entity.Company, report *ordering.SalesReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("xlsx: reporte vacío")
	}
	f, st, err := newWorkbook(SheetSales)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear libro: %w", err)
	}
	defer f.Close()

	w := &sheetWriter{f: f, sheet: SheetSales}
	w.row(st.bold, company.Name)
	w.row(0, "Desde", report.Filter.From.Format(time.DateOnly), "Hasta", report.Filter.To.Format(time.DateOnly))
	if len(report.Filter.Kinds) > 0 {
		w.row(0, "Tipo", strings.Join(report.Filter.Kinds, ", "))
	}
	w.skip()

	w.row(st.bold, "Número", "Tipo", "Fecha", "Tercero", "Base", "Impuesto", "Total")
	for _, o := range report.Orders {
		w.row(0, o.Number, o.Kind, o.Date.Format(time.DateOnly), o.PartyName, o.TotalTaxable, o.TotalTax, o.TotalAmount)
		w.style(st.money, "E", "F", "G")
	}
	w.row(st.bold, "TOTALES", len(report.Orders), "", "", report.Totals.Taxable, report.Totals.Tax, report.Totals.Total)
	w.style(st.total, "E", "F", "G")

	if w.err == nil {
		w.err = f.SetColWidth(SheetSales, "D", "D", 32)
	}
	return finish(f, w.err)
}

// RenderProductsXLSX exporta el catálogo: una fila por producto con su existencia y valor en inventario.
func (r *ExcelRenderer) RenderProductsXLSX(_ context.Context, company entity.Company, rows []documents.ProductStock) ([]byte, error) {
	f, st, err := newWorkbook(SheetProducts)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear libro: %w", err)
	}
	defer f.Close()

	w := &sheetWriter{f: f, sheet: SheetProducts}
	w.row(st.bold, company.Name)
	w.skip()

	w.row(st.bold, "SKU", "Nombre", "Categoría", "Precio", "Imp%", "Existencia", "Reorden", "Valor")
	total := decimal.Zero
	for _, ps := range rows {
		p := ps.Product
		value := money.Round(ps.Quantity.Mul(p.UnitPrice))
		total = total.Add(value)
		w.row(0, p.SKU, p.Name, p.Category, p.UnitPrice, p.TaxRate.InexactFloat64(),
			ps.Quantity.InexactFloat64(), p.ReorderLevel.InexactFloat64(), value)
		w.style(st.money, "D", "H")
	}
	w.row(st.bold, "TOTAL", len(rows), "", "", "", "", "", total)
	w.style(st.total, "H")

	if w.err == nil {
		w.err = f.SetColWidth(SheetProducts, "B", "B", 40)
	}
	return finish(f, w.err)
}

func partyName(doc documents.OrderDocument) string {
	if doc.Party != nil {
		return doc.Party.Name
	}
	return doc.Order.PartyName
}

func finish(f *excelize.File, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter escribe filas consecutivas y guarda el primer error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	n     int
	err   error
}

func (w *sheetWriter) skip() { w.n++ }

func (w *sheetWriter) row(style int, values ...any) {
	if w.err != nil {
		return
	}
	w.n++
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.n)
		if err != nil {
			w.err = err
			return
		}
		if d, ok := v.(decimal.Decimal); ok {
			v = d.InexactFloat64()
		}
		if w.err = w.f.SetCellValue(w.sheet, cell, v); w.err != nil {
			return
		}
		if style != 0 {
			if w.err = w.f.SetCellStyle(w.sheet, cell, cell, style); w.err != nil {
				return
			}
		}
	}
}

// style aplica style a las columnas indicadas de la última fila escrita.
func (w *sheetWriter) style(style int, cols ...string) {
	for _, c := range cols {
		if w.err != nil {
			return
		}
		cell := fmt.Sprintf("%s%d", c, w.n)
		w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
	}
}
