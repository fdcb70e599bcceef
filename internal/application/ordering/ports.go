package ordering

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una única transacción de BD con repositorios atados a esa tx.
// Si fn devuelve error se hace rollback de todo; si no, commit.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		partyRepo repository.PartyRepository,
	) error) error
}
