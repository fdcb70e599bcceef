package ordering

import (
	"context"
	"strings"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// QueryUseCase lectura de órdenes confirmadas tal como quedaron almacenadas.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// GetByNumber devuelve la orden con sus líneas; ErrNotFound si no existe.
func (uc *QueryUseCase) GetByNumber(ctx context.Context, number string) (*OrderView, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.NewValidationError("number", "es obligatorio")
	}
	o, err := uc.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, domain.AsStorage("buscar orden", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(ctx, o.ID)
	if err != nil {
		return nil, domain.AsStorage("líneas de la orden", err)
	}
	return &OrderView{Order: o, Lines: lines}, nil
}
