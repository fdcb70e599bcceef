package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
)

// ReportHandler reportes de ventas por rango de fechas.
type ReportHandler struct {
	reports *ordering.ReportUseCase
	docs    *documents.UseCase
	now     func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *ordering.ReportUseCase, docs *documents.UseCase) *ReportHandler {
	return &ReportHandler{reports: reports, docs: docs, now: time.Now}
}

// Sales GET /api/reports/sales?from=YYYY-MM-DD&to=YYYY-MM-DD&kind=SALE
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var q dto.SalesReportRequest
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	f, err := ordering.ParseFilter(q, h.now().UTC())
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.reports.Sales(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report.ToResponse())
}

// SalesXLSX GET /api/reports/sales.xlsx (mismos filtros que Sales)
func (h *ReportHandler) SalesXLSX(c *fiber.Ctx) error {
	var q dto.SalesReportRequest
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	f, err := ordering.ParseFilter(q, h.now().UTC())
	if err != nil {
		return writeError(c, err)
	}
	b, name, err := h.docs.SalesXLSX(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimeXLSX, name, b)
}
