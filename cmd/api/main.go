package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Ordenes-api/internal/application/catalog"
	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Ordenes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Ordenes-api/internal/interfaces/http"
	"github.com/jhoicas/Ordenes-api/pkg/config"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer store.Close()

	notifier := notify.New(cfg.Notify.WebhookURL, time.Duration(cfg.Notify.TimeoutSeconds)*time.Second)
	settings := ordering.Settings{
		Prefixes:           cfg.Orders.Prefixes,
		NumberWidth:        cfg.Orders.NumberWidth,
		MinLines:           cfg.Orders.MinLines,
		AllowNegativeStock: cfg.Orders.AllowNegativeStock,
	}
	company := entity.Company{
		Name:    cfg.Company.Name,
		TaxID:   cfg.Company.TaxID,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	}

	queryUC := ordering.NewQueryUseCase(store.Orders)
	reportUC := ordering.NewReportUseCase(store.Orders)
	stockUC := inventory.NewStockUseCase(
		store.Tx, store.Stock, store.Movements, notifier, cfg.Orders.AllowNegativeStock, log,
	)
	docsUC := documents.NewUseCase(
		queryUC, reportUC, store.Parties, store.Products, store.Stock,
		infrapdf.NewMarotoRenderer("es"), spreadsheet.NewExcelRenderer(), company,
	)

	// Revisión periódica de stock bajo → webhook
	sched := scheduler.New(cfg.Schedule.LowStockCron, stockUC, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Schedule.LowStockCron).Msg("LOW_STOCK_CRON inválido")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Órdenes API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Builder:   ordering.NewDraftBuilder(store.Products, store.Parties),
		Commit:    ordering.NewCommitOrderUseCase(store.Tx, settings, notifier, log),
		Numbering: ordering.NewNumberingUseCase(store.Orders, settings),
		Query:     queryUC,
		Reports:   reportUC,
		Documents: docsUC,
		Stock:     stockUC,
		Catalog:   catalog.NewUseCase(store.Products, store.Parties),
		Ping:      store.Ping,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
