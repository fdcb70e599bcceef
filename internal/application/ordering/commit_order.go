package ordering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/ports"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/numbering"
	"github.com/jhoicas/Ordenes-api/internal/domain/order"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// CommitOrderUseCase confirma un borrador: cabecera, líneas, stock y movimientos en una sola transacción.
type CommitOrderUseCase struct {
	txRunner TxRunner
	settings Settings
	notifier ports.Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewCommitOrderUseCase construye el caso de uso. notifier puede ser nil.
func NewCommitOrderUseCase(txRunner TxRunner, settings Settings, notifier ports.Notifier, log *logger.Logger) *CommitOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CommitOrderUseCase{
		txRunner: txRunner,
		settings: settings,
		notifier: notifier,
		log:      log.Component("commit_order"),
		now:      time.Now,
	}
}

// Commit persiste el borrador. Cualquier error deja la BD como estaba antes de la llamada.
// Errores posibles: ValidationError, ReferenceError, ErrDuplicateIdentifier,
// ErrInsufficientStock y StorageError.
func (uc *CommitOrderUseCase) Commit(ctx context.Context, d *order.Draft, userID string) (*OrderView, error) {
	if d == nil {
		return nil, domain.NewValidationError("order", "es obligatoria")
	}
	// 1) Validación previa a abrir la transacción
	if err := d.Validate(uc.settings.MinLines); err != nil {
		return nil, err
	}

	lines, totals := d.Snapshot()
	now := uc.now().UTC()
	sign := entity.StockSign(d.Kind)
	prefix := uc.settings.PrefixFor(d.Kind)

	var view *OrderView

	// 2) Una transacción: commit si fn retorna nil, rollback en cualquier otro caso
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		partyRepo repository.PartyRepository,
	) error {
		// 3) Número: el del borrador o el siguiente de la serie, leído dentro de la tx
		number := d.Number
		if number == "" {
			last, err := orderRepo.LastNumber(ctx, prefix)
			if err != nil {
				return err
			}
			number = numbering.Next(last, prefix, uc.settings.width())
		}

		// 4) Referencias
		partyName, partyPhone, partyAddress := d.PartyName, d.PartyPhone, d.PartyAddress
		if d.PartyID != "" {
			party, err := partyRepo.GetByID(ctx, d.PartyID)
			if err != nil {
				return err
			}
			if party == nil {
				return &domain.ReferenceError{Entity: "party", ID: d.PartyID}
			}
			partyName, partyPhone, partyAddress = party.Name, party.Phone, party.Address
		}
		seen := make(map[string]bool)
		for _, l := range lines {
			if l.ProductID == "" || seen[l.ProductID] {
				continue
			}
			p, err := productRepo.GetByID(ctx, l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return &domain.ReferenceError{Entity: "product", ID: l.ProductID}
			}
			seen[l.ProductID] = true
		}

		// 5) Cabecera con los totales del snapshot
		o := &entity.Order{
			ID:           uuid.New().String(),
			Number:       number,
			Kind:         d.Kind,
			Date:         d.Date,
			PartyID:      d.PartyID,
			PartyName:    partyName,
			PartyPhone:   partyPhone,
			PartyAddress: partyAddress,
			TotalTaxable: totals.Taxable,
			TotalTax:     totals.Tax,
			TotalAmount:  totals.Total,
			Status:       entity.OrderStatusPersisted,
			CreatedBy:    userID,
			CreatedAt:    now,
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}

		// 6) Líneas y, si el tipo mueve inventario, delta atómico + movimiento
		persisted := make([]*entity.OrderLine, 0, len(lines))
		for i := range lines {
			line := lines[i]
			line.ID = uuid.New().String()
			line.OrderID = o.ID
			if err := orderRepo.CreateLine(ctx, &line); err != nil {
				return err
			}
			persisted = append(persisted, &line)

			if sign == 0 {
				continue
			}
			delta := line.Quantity.Mul(decimal.NewFromInt(sign))
			if delta.IsZero() {
				continue
			}
			if err := uc.moveStock(ctx, stockRepo, movRepo, o, line.ProductID, delta, now); err != nil {
				return err
			}
		}

		view = &OrderView{Order: o, Lines: persisted}
		return nil
	})
	// 7) Resultado de la transacción
	if err != nil {
		err = domain.AsStorage("confirmar orden", err)
		if errors.Is(err, domain.ErrStorage) {
			uc.log.Error().Err(err).Str("kind", d.Kind).Msg("falló la confirmación de la orden")
		} else {
			uc.log.Debug().Err(err).Str("kind", d.Kind).Msg("orden rechazada")
		}
		return nil, err
	}

	olog := uc.log.With("number", view.Order.Number)
	olog.Info().
		Str("kind", view.Order.Kind).
		Int("lines", len(view.Lines)).
		Str("total_amount", view.Order.TotalAmount.StringFixed(2)).
		Msg("orden confirmada")

	// 8) Notificación posterior al commit: sus fallas solo se registran
	uc.publish(ctx, olog, view)
	return view, nil
}

func (uc *CommitOrderUseCase) moveStock(
	ctx context.Context,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	o *entity.Order,
	productID string,
	delta decimal.Decimal,
	now time.Time,
) error {
	level, err := stockRepo.ApplyDelta(ctx, productID, delta)
	if err != nil {
		return err
	}
	if level.IsNegative() && !uc.settings.AllowNegativeStock {
		return fmt.Errorf("%w: producto %s quedaría en %s", domain.ErrInsufficientStock, productID, level.String())
	}
	return movRepo.Create(ctx, &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: productID,
		OrderID:   o.ID,
		Quantity:  delta,
		Reason:    o.Number,
		CreatedAt: now,
		CreatedBy: o.CreatedBy,
	})
}

func (uc *CommitOrderUseCase) publish(ctx context.Context, olog *logger.Logger, view *OrderView) {
	if uc.notifier == nil {
		return
	}
	ev := ports.Event{
		Type:       ports.EventOrderCommitted,
		OccurredAt: uc.now().UTC(),
		Payload:    view.ToResponse(),
	}
	if err := uc.notifier.Publish(ctx, ev); err != nil {
		olog.Warn().Err(err).Msg("no se pudo notificar la orden confirmada")
	}
}
