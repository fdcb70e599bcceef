package ordering

import (
	"context"
	"strings"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/numbering"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// NumberingUseCase calcula el siguiente identificador de una serie para mostrarlo antes de confirmar.
// El número definitivo se asigna dentro de la transacción de Commit.
type NumberingUseCase struct {
	orderRepo repository.OrderRepository
	settings  Settings
}

// NewNumberingUseCase construye el caso de uso.
func NewNumberingUseCase(orderRepo repository.OrderRepository, settings Settings) *NumberingUseCase {
	return &NumberingUseCase{orderRepo: orderRepo, settings: settings}
}

// Next devuelve el siguiente número para kind (ej. PO0007 -> PO0008; sin registros -> PO0001).
func (uc *NumberingUseCase) Next(ctx context.Context, kind string) (string, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if !entity.ValidOrderKind(kind) {
		return "", domain.NewValidationError("kind", "tipo de orden desconocido")
	}
	prefix := uc.settings.PrefixFor(kind)
	last, err := uc.orderRepo.LastNumber(ctx, prefix)
	if err != nil {
		return "", domain.AsStorage("último número", err)
	}
	return numbering.Next(last, prefix, uc.settings.width()), nil
}
