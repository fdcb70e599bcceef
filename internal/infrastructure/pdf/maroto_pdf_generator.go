// Package pdf genera la representación impresa de las órdenes confirmadas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT        │  Tipo + N° orden + Fecha    │
//	│  EMISOR: Dirección / Tel / Email                             │
//	│  TERCERO: Cliente o proveedor                                │
//	│  TABLA: Cant | Descripción | P.Unit | Imp% | Total línea     │
//	│  TOTALES: Base gravable / Impuestos / TOTAL                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var kindTitles = map[string]string{
	entity.OrderKindInvoice:    "FACTURA DE VENTA",
	entity.OrderKindPurchase:   "ORDEN DE COMPRA",
	entity.OrderKindSale:       "NOTA DE VENTA",
	entity.OrderKindCreditNote: "NOTA CRÉDITO",
}

// MarotoRenderer implementa documents.OrderPDFRenderer usando Maroto v2.
type MarotoRenderer struct {
	printer *message.Printer
}

// NewMarotoRenderer construye el renderizador. Los importes se formatean según lang (ej. "es").
func NewMarotoRenderer(lang string) *MarotoRenderer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoRenderer{printer: message.NewPrinter(tag)}
}

// RenderOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRenderer) RenderOrderPDF(_ context.Context, doc documents.OrderDocument) ([]byte, error) {
	if doc.Order == nil {
		return nil, fmt.Errorf("pdf: orden vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title(doc.Order.Kind)+" "+doc.Order.Number, true).
		WithAuthor(doc.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(doc.Company))
	if doc.Party != nil {
		m.AddRows(partyRow(doc.Party))
	} else if doc.Order.PartyName != "" {
		// cliente de mostrador: solo los datos copiados en la orden
		m.AddRows(partyRow(&entity.Party{
			Kind:    entity.PartyKindCustomer,
			Name:    doc.Order.PartyName,
			Phone:   doc.Order.PartyPhone,
			Address: doc.Order.PartyAddress,
		}))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.lineRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(doc.Order))

	d, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return d.GetBytes(), nil
}

func (g *MarotoRenderer) headerRow(doc documents.OrderDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(doc.Company.Name, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(doc.Company.TaxID, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title(doc.Order.Kind), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+doc.Order.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func issuerRow(c entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(c.Address, "-"), nonEmpty(c.Phone, "-"), nonEmpty(c.Email, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func partyRow(p *entity.Party) core.Row {
	label := "TERCERO"
	switch p.Kind {
	case entity.PartyKindCustomer:
		label = "CLIENTE"
	case entity.PartyKindSupplier:
		label = "PROVEEDOR"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(partyDetail(p), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func partyDetail(p *entity.Party) string {
	detail := fmt.Sprintf("NIT/CC: %s   |   Email: %s   |   Tel: %s",
		nonEmpty(p.TaxID, "-"), nonEmpty(p.Email, "-"), nonEmpty(p.Phone, "-"))
	if p.Address != "" {
		detail += "   |   Dir: " + p.Address
	}
	return detail
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Imp%", 1, align.Center),
		h("Total línea", 3, align.Right),
	)
}

func (g *MarotoRenderer) lineRows(lines []*entity.OrderLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(l.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+g.formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(l.TaxRate.String()+"%", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+g.formatMoney(l.LineTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *MarotoRenderer) totalsRow(o *entity.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: right, Top: 14,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Base gravable:", 1),
			label("Impuestos:", 7),
			grand("TOTAL:", 2),
		),
		col.New(3).Add(
			value("$"+g.formatMoney(o.TotalTaxable), 1),
			value("$"+g.formatMoney(o.TotalTax), 7),
			grand("$"+g.formatMoney(o.TotalAmount), 1),
		),
		col.New(3),
	)
}

func title(kind string) string {
	if t, ok := kindTitles[kind]; ok {
		return t
	}
	return strings.ToUpper(kind)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney agrupa miles según el idioma del printer y fija dos decimales.
// Ej. (es): 12345.6 → "12.345,60", -236 → "-236,00".
func (g *MarotoRenderer) formatMoney(d decimal.Decimal) string {
	a := d.Abs().Round(2)
	whole := a.Truncate(0)
	cents := a.Sub(whole).Shift(2).IntPart()
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	sep := g.printer.Sprintf("%.1f", 0.5)[1:2]
	return fmt.Sprintf("%s%s%s%02d", sign, g.printer.Sprintf("%d", whole.IntPart()), sep, cents)
}
