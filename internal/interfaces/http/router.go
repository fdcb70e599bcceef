package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/catalog"
	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
	"github.com/jhoicas/Ordenes-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Builder   *ordering.DraftBuilder
	Commit    *ordering.CommitOrderUseCase
	Numbering *ordering.NumberingUseCase
	Query     *ordering.QueryUseCase
	Reports   *ordering.ReportUseCase
	Documents *documents.UseCase
	Stock     *inventory.StockUseCase
	Catalog   *catalog.UseCase
	Ping      func(ctx context.Context) error // opcional: verifica la base de datos en /health
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.AppName, deps.Ping))

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	inventoryRoles := RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.Builder, deps.Commit, deps.Numbering, deps.Query, deps.Documents)
	orders.Post("/preview", orderHandler.Preview)
	orders.Post("/", orderHandler.Create)
	orders.Get("/next-number", orderHandler.NextNumber)
	orders.Get("/:number", orderHandler.GetByNumber)
	orders.Get("/:number/pdf", orderHandler.PDF)
	orders.Get("/:number/xlsx", orderHandler.XLSX)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports, deps.Documents)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales.xlsx", reportHandler.SalesXLSX)

	// Stock
	stock := api.Group("/stock")
	inventoryHandler := NewInventoryHandler(deps.Stock)
	stock.Post("/adjustments", inventoryRoles, inventoryHandler.Adjust)
	stock.Get("/low", inventoryHandler.LowStock)
	stock.Get("/:product_id/reconcile", inventoryHandler.Reconcile)

	// Catalog
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Documents)
	products := api.Group("/products")
	products.Post("/", inventoryRoles, catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/export.xlsx", catalogHandler.ProductsXLSX)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Put("/:id", inventoryRoles, catalogHandler.UpdateProduct)

	parties := api.Group("/parties")
	parties.Post("/", catalogHandler.CreateParty)
	parties.Get("/", catalogHandler.ListParties)
}

func healthHandler(service string, ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			if err := ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": service})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
