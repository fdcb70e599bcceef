// Package storage elige el backend de persistencia (PostgreSQL o SQLite) según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Ordenes-api/pkg/config"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// TxRunner transacciones de órdenes y de ajustes de stock sobre el mismo backend.
type TxRunner interface {
	ordering.TxRunner
	inventory.TxRunner
}

// Storage repositorios listos para usar fuera de transacción más el runner transaccional.
type Storage struct {
	Driver    string
	Orders    repository.OrderRepository
	Products  repository.ProductRepository
	Parties   repository.PartyRepository
	Stock     repository.StockRepository
	Movements repository.StockMovementRepository
	Tx        TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Open conecta al backend configurado y aplica migraciones si DB_MIGRATE está activo.
// SQLite siempre crea sus tablas al abrir.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storage, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.Migrate {
			if err := postgres.Migrate(cfg.ConnectionString()); err != nil {
				return nil, err
			}
			log.Info().Msg("migraciones PostgreSQL aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Storage{
			Driver:    cfg.Driver,
			Orders:    postgres.NewOrderRepository(pool),
			Products:  postgres.NewProductRepository(pool),
			Parties:   postgres.NewPartyRepository(pool),
			Stock:     postgres.NewStockRepository(pool),
			Movements: postgres.NewStockMovementRepository(pool),
			Tx:        postgres.NewTxRunner(pool),
			ping:      pool.Ping,
			close:     pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(sqlite.FileDSN(cfg.SQLitePath))
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("usando SQLite")
		return &Storage{
			Driver:    cfg.Driver,
			Orders:    sqlite.NewOrderRepository(db),
			Products:  sqlite.NewProductRepository(db),
			Parties:   sqlite.NewPartyRepository(db),
			Stock:     sqlite.NewStockRepository(db),
			Movements: sqlite.NewStockMovementRepository(db),
			Tx:        sqlite.NewTxRunner(db),
			ping:      sqlDB.PingContext,
			close:     func() { _ = sqlDB.Close() },
		}, nil
	}
	return nil, fmt.Errorf("storage: driver %q no soportado", cfg.Driver)
}

// Ping verifica la conexión (health check).
func (s *Storage) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close libera las conexiones.
func (s *Storage) Close() { s.close() }
