package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/ports"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/money"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// idealFactor stock ideal = nivel de reorden * 1.5.
var idealFactor = decimal.RequireFromString("1.5")

// StockUseCase ajustes manuales, alertas de stock bajo y conciliación contra el historial.
type StockUseCase struct {
	txRunner           TxRunner
	stockRepo          repository.StockRepository
	movRepo            repository.StockMovementRepository
	notifier           ports.Notifier
	allowNegativeStock bool
	log                *logger.Logger
}

// NewStockUseCase construye el caso de uso. notifier puede ser nil.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	notifier ports.Notifier,
	allowNegativeStock bool,
	log *logger.Logger,
) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{
		txRunner:           txRunner,
		stockRepo:          stockRepo,
		movRepo:            movRepo,
		notifier:           notifier,
		allowNegativeStock: allowNegativeStock,
		log:                log.Component("stock"),
	}
}

// Adjust aplica un delta con signo y registra el movimiento con el motivo dado, en la misma transacción.
func (uc *StockUseCase) Adjust(ctx context.Context, userID string, in dto.StockAdjustmentRequest) (*entity.StockLevel, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, domain.NewValidationError("product_id", "es obligatorio")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "es obligatorio")
	}
	delta, err := money.NewSignedQuantity(in.Quantity.String())
	if err != nil {
		return nil, err
	}
	if delta.IsZero() {
		return nil, domain.NewValidationError("quantity", "no puede ser cero")
	}

	now := time.Now().UTC()
	var level *entity.StockLevel
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return &domain.ReferenceError{Entity: "product", ID: productID}
		}
		qty, err := stockRepo.ApplyDelta(ctx, productID, delta)
		if err != nil {
			return err
		}
		if qty.IsNegative() && !uc.allowNegativeStock {
			return fmt.Errorf("%w: producto %s quedaría en %s", domain.ErrInsufficientStock, productID, qty.String())
		}
		if err := movRepo.Create(ctx, &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Quantity:  delta,
			Reason:    reason,
			CreatedAt: now,
			CreatedBy: userID,
		}); err != nil {
			return err
		}
		level = &entity.StockLevel{ProductID: productID, Quantity: qty, UpdatedAt: now}
		return nil
	})
	if err != nil {
		return nil, domain.AsStorage("ajustar stock", err)
	}
	uc.log.Info().Str("product_id", productID).Str("delta", delta.String()).Str("reason", reason).Msg("ajuste de stock")
	return level, nil
}

// LowStock productos con existencia menor o igual a su nivel de reorden, con la cantidad sugerida.
func (uc *StockUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemResponse, error) {
	items, err := uc.stockRepo.ListLow(ctx)
	if err != nil {
		return nil, domain.AsStorage("stock bajo", err)
	}
	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, it := range items {
		suggested := it.ReorderLevel.Mul(idealFactor).Sub(it.Quantity)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		out = append(out, dto.LowStockItemResponse{
			ProductID:         it.ProductID,
			SKU:               it.SKU,
			Name:              it.Name,
			Quantity:          it.Quantity.String(),
			ReorderLevel:      it.ReorderLevel.String(),
			SuggestedOrderQty: suggested.String(),
		})
	}
	return out, nil
}

// NotifyLowStock publica un evento stock.low si hay productos bajo su nivel de reorden.
// Devuelve cuántos productos se reportaron.
func (uc *StockUseCase) NotifyLowStock(ctx context.Context) (int, error) {
	items, err := uc.LowStock(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 || uc.notifier == nil {
		return len(items), nil
	}
	ev := ports.Event{Type: ports.EventLowStock, OccurredAt: time.Now().UTC(), Payload: items}
	if err := uc.notifier.Publish(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Int("items", len(items)).Msg("no se pudo notificar stock bajo")
		return len(items), nil
	}
	uc.log.Info().Int("items", len(items)).Msg("alerta de stock bajo enviada")
	return len(items), nil
}

// Reconcile compara la existencia con la suma de sus movimientos.
func (uc *StockUseCase) Reconcile(ctx context.Context, productID string) (*dto.ReconcileResponse, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.NewValidationError("product_id", "es obligatorio")
	}
	level, err := uc.stockRepo.Get(ctx, productID)
	if err != nil {
		return nil, domain.AsStorage("existencia", err)
	}
	sum, err := uc.movRepo.SumByProduct(ctx, productID)
	if err != nil {
		return nil, domain.AsStorage("suma de movimientos", err)
	}
	consistent := level.Quantity.Equal(sum)
	if !consistent {
		uc.log.Warn().Str("product_id", productID).Str("level", level.Quantity.String()).Str("movements", sum.String()).Msg("existencia no coincide con el historial")
	}
	return &dto.ReconcileResponse{
		ProductID:    productID,
		Level:        level.Quantity.String(),
		MovementsSum: sum.String(),
		Consistent:   consistent,
	}, nil
}
