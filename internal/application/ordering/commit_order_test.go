package ordering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/application/ports"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

func newCommit(runner ordering.TxRunner, s ordering.Settings, n ports.Notifier) *ordering.CommitOrderUseCase {
	return ordering.NewCommitOrderUseCase(runner, s, n, logger.Nop())
}

func TestCommit_CompraSumaStockYRegistraMovimiento(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	x := e.product(t, "X", "10.00", "0")
	sup := e.supplier(t, "Proveedor Uno")

	d := newDraft(t, entity.OrderKindPurchase)
	d.PartyID = sup.ID
	_, err := d.AddProduct(x.ID, "Tornillos", "5", "10.00", "0")
	require.NoError(t, err)

	view, err := newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(ctx, d, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "PO0001", view.Order.Number)
	assert.Equal(t, "Proveedor Uno", view.Order.PartyName)
	assert.Equal(t, entity.OrderStatusPersisted, view.Order.Status)
	assert.Equal(t, "5", e.stockOf(t, x.ID).String())

	movs, err := e.movements.ListByOrder(ctx, view.Order.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "5", movs[0].Quantity.String())
	assert.Equal(t, "PO0001", movs[0].Reason)
	assert.Equal(t, "user-1", movs[0].CreatedBy)
}

func TestCommit_NumeraSiguienteDeLaSerie(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	x := e.product(t, "X", "1.00", "0")
	sup := e.supplier(t, "Proveedor")
	uc := newCommit(e.runner, ordering.DefaultSettings(), nil)

	first := newDraft(t, entity.OrderKindPurchase)
	first.Number = "PO0007"
	first.PartyID = sup.ID
	_, _ = first.AddProduct(x.ID, "A", "1", "1.00", "0")
	_, err := uc.Commit(ctx, first, "u")
	require.NoError(t, err)

	next := newDraft(t, entity.OrderKindPurchase)
	next.PartyID = sup.ID
	_, _ = next.AddProduct(x.ID, "A", "1", "1.00", "0")
	view, err := uc.Commit(ctx, next, "u")
	require.NoError(t, err)
	assert.Equal(t, "PO0008", view.Order.Number)

	n, err := ordering.NewNumberingUseCase(e.orders, ordering.DefaultSettings()).Next(ctx, "purchase")
	require.NoError(t, err)
	assert.Equal(t, "PO0009", n)
}

func TestCommit_TotalesPersistidosIgualanSumaDeLineas(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	d := newDraft(t, entity.OrderKindInvoice)
	_, _ = d.Add("Consultoría", "3", "150.00", "18")
	_, _ = d.Add("Consultoría", "3", "150.00", "18")

	_, err := newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(ctx, d, "u")
	require.NoError(t, err)

	view, err := ordering.NewQueryUseCase(e.orders).GetByNumber(ctx, "INV0001")
	require.NoError(t, err)
	assert.Equal(t, "900.00", view.Order.TotalTaxable.StringFixed(2))
	assert.Equal(t, "162.00", view.Order.TotalTax.StringFixed(2))
	assert.Equal(t, "1062.00", view.Order.TotalAmount.StringFixed(2))

	require.Len(t, view.Lines, 2)
	sum := view.Lines[0].LineTotal.Add(view.Lines[1].LineTotal)
	assert.True(t, sum.Equal(view.Order.TotalAmount))
	assert.Equal(t, 1, view.Lines[0].Position)
	assert.Equal(t, "531.00", view.Lines[1].LineTotal.StringFixed(2))
}

func TestCommit_FallaEnUltimaLineaNoDejaRastro(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	x := e.product(t, "X", "1.00", "0")
	y := e.product(t, "Y", "1.00", "0")
	sup := e.supplier(t, "Proveedor")

	d := newDraft(t, entity.OrderKindPurchase)
	d.PartyID = sup.ID
	_, _ = d.AddProduct(x.ID, "X", "4", "1.00", "0")
	_, _ = d.AddProduct(y.ID, "Y", "6", "1.00", "0")

	runner := &failingTxRunner{inner: e.runner, failOn: 2}
	_, err := newCommit(runner, ordering.DefaultSettings(), nil).Commit(ctx, d, "u")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)

	o, err := e.orders.GetByNumber(ctx, "PO0001")
	require.NoError(t, err)
	assert.Nil(t, o, "la cabecera no debe existir")

	var lines int64
	require.NoError(t, e.db.Table("order_lines").Count(&lines).Error)
	assert.Zero(t, lines)

	assert.True(t, e.stockOf(t, x.ID).IsZero(), "el stock de la primera línea se revierte")
	sum, err := e.movements.SumByProduct(ctx, x.ID)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestCommit_NumeroDuplicado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := newCommit(e.runner, ordering.DefaultSettings(), nil)

	for i := 0; i < 2; i++ {
		d := newDraft(t, entity.OrderKindInvoice)
		d.Number = "INV0001"
		_, _ = d.Add("Servicio", "1", "10.00", "0")
		_, err := uc.Commit(ctx, d, "u")
		if i == 0 {
			require.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
	}

	report, err := ordering.NewReportUseCase(e.orders).Sales(ctx, wideFilter())
	require.NoError(t, err)
	assert.Len(t, report.Orders, 1)
}

func TestCommit_VentaSinStockSuficiente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	x := e.product(t, "X", "1.00", "0")

	d := newDraft(t, entity.OrderKindSale)
	_, _ = d.AddProduct(x.ID, "X", "2", "1.00", "0")

	_, err := newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(ctx, d, "u")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, domain.IsCallerFixable(err))
	assert.True(t, e.stockOf(t, x.ID).IsZero())

	s := ordering.DefaultSettings()
	s.AllowNegativeStock = true
	view, err := newCommit(e.runner, s, nil).Commit(ctx, d, "u")
	require.NoError(t, err)
	assert.Equal(t, "SO0001", view.Order.Number)
	assert.Equal(t, "-2", e.stockOf(t, x.ID).String())
}

func TestCommit_NotaCreditoDevuelveStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	x := e.product(t, "X", "100.00", "18")

	d := newDraft(t, entity.OrderKindCreditNote)
	_, err := d.AddProduct(x.ID, "Devolución", "-2", "100.00", "18")
	require.NoError(t, err)

	view, err := newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(ctx, d, "u")
	require.NoError(t, err)
	assert.Equal(t, "NC0001", view.Order.Number)
	assert.Equal(t, "-236.00", view.Order.TotalAmount.StringFixed(2))
	assert.Equal(t, "2", e.stockOf(t, x.ID).String())
}

func TestCommit_ReferenciasInexistentes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := newCommit(e.runner, ordering.DefaultSettings(), nil)

	d := newDraft(t, entity.OrderKindSale)
	_, _ = d.AddProduct("no-existe", "Fantasma", "1", "1.00", "0")
	_, err := uc.Commit(ctx, d, "u")
	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "product", refErr.Entity)

	inv := newDraft(t, entity.OrderKindInvoice)
	inv.PartyID = "cliente-fantasma"
	_, _ = inv.Add("Servicio", "1", "1.00", "0")
	_, err = uc.Commit(ctx, inv, "u")
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestCommit_ValidaAntesDeAbrirTransaccion(t *testing.T) {
	e := newEnv(t)
	x := e.product(t, "X", "1.00", "0")

	d := newDraft(t, entity.OrderKindPurchase)
	_, _ = d.AddProduct(x.ID, "X", "1", "1.00", "0")

	_, err := newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(context.Background(), d, "u")
	assert.ErrorIs(t, err, domain.ErrValidation, "compra sin proveedor")

	_, err = newCommit(e.runner, ordering.DefaultSettings(), nil).Commit(context.Background(), nil, "u")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommit_FallaDelNotificadorNoAfectaResultado(t *testing.T) {
	e := newEnv(t)
	n := &recordingNotifier{err: errors.New("webhook caído")}

	d := newDraft(t, entity.OrderKindInvoice)
	_, _ = d.Add("Servicio", "1", "10.00", "0")

	view, err := newCommit(e.runner, ordering.DefaultSettings(), n).Commit(context.Background(), d, "u")
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Len(t, n.events, 1)
	assert.Equal(t, ports.EventOrderCommitted, n.events[0].Type)
}

func TestCommit_PrefijoConfigurable(t *testing.T) {
	e := newEnv(t)
	s := ordering.DefaultSettings()
	s.Prefixes = map[string]string{entity.OrderKindInvoice: "FV-"}
	s.NumberWidth = 6

	d := newDraft(t, entity.OrderKindInvoice)
	_, _ = d.Add("Servicio", "1", "10.00", "0")
	view, err := newCommit(e.runner, s, nil).Commit(context.Background(), d, "u")
	require.NoError(t, err)
	assert.Equal(t, "FV-000001", view.Order.Number)
}

func TestCommit_NumeroManualFueraDeSerieNoRompeConsecutivo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := newCommit(e.runner, ordering.DefaultSettings(), nil)

	var got []string
	for _, manual := range []string{"", "", "INV2024-0001", "", ""} {
		d := newDraft(t, entity.OrderKindInvoice)
		d.Number = manual
		_, _ = d.Add("Servicio", "1", "10.00", "0")
		view, err := uc.Commit(ctx, d, "u")
		require.NoError(t, err)
		got = append(got, view.Order.Number)
	}
	assert.Equal(t, []string{"INV0001", "INV0002", "INV2024-0001", "INV0003", "INV0004"}, got)
}
