package ordering_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain"
)

func TestDraftBuilder_CompletaDesdeCatalogo(t *testing.T) {
	e := newEnv(t)
	x := e.product(t, "X", "150.00", "18")
	sup := e.supplier(t, "Proveedor")
	b := ordering.NewDraftBuilder(e.products, e.parties)

	d, err := b.Build(context.Background(), dto.CreateOrderRequest{
		Kind:    "purchase",
		Date:    "2024-03-01",
		PartyID: sup.ID,
		Items:   []dto.OrderLineRequest{{ProductID: x.ID, Quantity: "3"}},
	})
	require.NoError(t, err)

	lines := d.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Producto X", lines[0].Description)
	assert.Equal(t, "531.00", lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "Proveedor", d.PartyName)

	resp := ordering.DraftResponse(d)
	assert.Equal(t, "DRAFT", resp.Status)
	assert.Equal(t, "531.00", resp.TotalAmount)
	assert.Equal(t, "2024-03-01", resp.Date)
}

func TestDraftBuilder_Errores(t *testing.T) {
	e := newEnv(t)
	b := ordering.NewDraftBuilder(e.products, e.parties)
	ctx := context.Background()

	_, err := b.Build(ctx, dto.CreateOrderRequest{Kind: "INVOICE", Items: []dto.OrderLineRequest{{ProductID: "nada", Quantity: "1"}}})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	_, err = b.Build(ctx, dto.CreateOrderRequest{Kind: "INVOICE", Items: []dto.OrderLineRequest{{Description: "x", Quantity: "1", UnitPrice: "1.005"}}})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "línea 1")

	_, err = b.Build(ctx, dto.CreateOrderRequest{Kind: "INVOICE", Date: "ayer"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = b.Build(ctx, dto.CreateOrderRequest{Kind: "INVOICE", PartyID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestDraftBuilder_ClienteDeMostradorSeGuardaEnLaOrden(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	b := ordering.NewDraftBuilder(e.products, e.parties)

	d, err := b.Build(ctx, dto.CreateOrderRequest{
		Kind:         "INVOICE",
		PartyName:    "  Ana Pérez ",
		PartyPhone:   "3001234567",
		PartyAddress: "Cra 7 # 10-20",
		Items:        []dto.OrderLineRequest{{Description: "Servicio", Quantity: "1", UnitPrice: "10.00"}},
	})
	require.NoError(t, err)
	assert.Empty(t, d.PartyID)
	assert.Equal(t, "Ana Pérez", d.PartyName)

	view, err := newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(ctx, d, "u")
	require.NoError(t, err)

	stored, err := e.orders.GetByNumber(ctx, view.Order.Number)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", stored.PartyName)
	assert.Equal(t, "3001234567", stored.PartyPhone)
	assert.Equal(t, "Cra 7 # 10-20", stored.PartyAddress)

	resp := view.ToResponse()
	assert.Equal(t, "3001234567", resp.PartyPhone)
}

func TestDraftBuilder_TerceroRegistradoPrevaleceSobreMostrador(t *testing.T) {
	e := newEnv(t)
	sup := e.supplier(t, "Proveedor")
	b := ordering.NewDraftBuilder(e.products, e.parties)

	d, err := b.Build(context.Background(), dto.CreateOrderRequest{
		Kind:      "PURCHASE",
		PartyID:   sup.ID,
		PartyName: "Otro nombre",
	})
	require.NoError(t, err)
	assert.Equal(t, "Proveedor", d.PartyName)
}
