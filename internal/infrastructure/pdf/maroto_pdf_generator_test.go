package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

func TestFormatMoney_AgrupaMilesEnEspanol(t *testing.T) {
	g := NewMarotoRenderer("es")
	assert.Equal(t, "12.345,60", g.formatMoney(decimal.RequireFromString("12345.6")))
	assert.Equal(t, "-236,00", g.formatMoney(decimal.NewFromInt(-236)))
	assert.Equal(t, "0,05", g.formatMoney(decimal.RequireFromString("0.05")))
	assert.Equal(t, "1.000.000,00", g.formatMoney(decimal.NewFromInt(1000000)))
}

func TestRenderOrderPDF_GeneraDocumento(t *testing.T) {
	g := NewMarotoRenderer("es")
	doc := documents.OrderDocument{
		Company: entity.Company{Name: "Ferretería Central", TaxID: "900123456"},
		Order: &entity.Order{
			Number: "PO0008", Kind: entity.OrderKindPurchase, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			TotalTaxable: decimal.NewFromInt(450), TotalTax: decimal.NewFromInt(81), TotalAmount: decimal.NewFromInt(531),
		},
		Lines: []*entity.OrderLine{{
			Position: 1, Description: "Cable", Quantity: decimal.NewFromInt(3),
			UnitPrice: decimal.NewFromInt(150), TaxRate: decimal.NewFromInt(18), LineTotal: decimal.NewFromInt(531),
		}},
		Party: &entity.Party{Kind: entity.PartyKindSupplier, Name: "Proveedor S.A."},
	}

	b, err := g.RenderOrderPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRenderOrderPDF_SinOrden(t *testing.T) {
	_, err := NewMarotoRenderer("es").RenderOrderPDF(context.Background(), documents.OrderDocument{})
	assert.Error(t, err)
}

func TestRenderOrderPDF_ClienteDeMostrador(t *testing.T) {
	doc := documents.OrderDocument{
		Order: &entity.Order{
			Number: "INV0001", Kind: entity.OrderKindInvoice, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			PartyName: "Ana Pérez", PartyPhone: "3001234567", PartyAddress: "Cra 7 # 10-20",
			TotalTaxable: decimal.NewFromInt(10), TotalTax: decimal.Zero, TotalAmount: decimal.NewFromInt(10),
		},
		Lines: []*entity.OrderLine{{
			Position: 1, Description: "Servicio", Quantity: decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(10), TaxRate: decimal.Zero, LineTotal: decimal.NewFromInt(10),
		}},
	}
	b, err := NewMarotoRenderer("es").RenderOrderPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestPartyDetail_IncluyeDireccionSiExiste(t *testing.T) {
	p := &entity.Party{Phone: "3001234567", Address: "Cra 7 # 10-20"}
	assert.Equal(t, "NIT/CC: -   |   Email: -   |   Tel: 3001234567   |   Dir: Cra 7 # 10-20", partyDetail(p))
	assert.NotContains(t, partyDetail(&entity.Party{}), "Dir:")
}
