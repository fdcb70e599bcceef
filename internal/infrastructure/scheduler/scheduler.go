// Package scheduler ejecuta tareas periódicas (revisión de stock bajo).
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// LowStockChecker publica los productos bajo su punto de reorden; devuelve cuántos encontró.
type LowStockChecker interface {
	NotifyLowStock(ctx context.Context) (int, error)
}

// Scheduler administra las tareas programadas.
type Scheduler struct {
	cron    *cron.Cron
	checker LowStockChecker
	spec    string
	timeout time.Duration
	log     *logger.Logger
}

// New construye el scheduler. spec vacío deshabilita la revisión de stock bajo.
func New(spec string, checker LowStockChecker, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:    cron.New(),
		checker: checker,
		spec:    spec,
		timeout: 2 * time.Minute,
		log:     log.Component("scheduler"),
	}
}

// Start registra las tareas y arranca el cron. Una expresión inválida se devuelve como error.
func (s *Scheduler) Start() error {
	if s.spec == "" || s.checker == nil {
		s.log.Info().Msg("revisión de stock bajo deshabilitada")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, s.checkLowStock); err != nil {
		return err
	}
	s.log.Info().Str("spec", s.spec).Msg("scheduler iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine la tarea en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) checkLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.checker.NotifyLowStock(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("revisión de stock bajo fallida")
		return
	}
	s.log.Debug().Int("productos", n).Msg("revisión de stock bajo completada")
}
