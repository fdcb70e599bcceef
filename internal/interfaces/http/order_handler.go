package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/ordering"
)

// OrderHandler captura, confirmación y consulta de órdenes (protegido).
type OrderHandler struct {
	builder   *ordering.DraftBuilder
	commit    *ordering.CommitOrderUseCase
	numbering *ordering.NumberingUseCase
	query     *ordering.QueryUseCase
	docs      *documents.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	builder *ordering.DraftBuilder,
	commit *ordering.CommitOrderUseCase,
	numbering *ordering.NumberingUseCase,
	query *ordering.QueryUseCase,
	docs *documents.UseCase,
) *OrderHandler {
	return &OrderHandler{builder: builder, commit: commit, numbering: numbering, query: query, docs: docs}
}

// Preview arma el borrador y devuelve líneas y totales sin persistir.
// POST /api/orders/preview
func (h *OrderHandler) Preview(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.builder.Build(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(ordering.DraftResponse(d))
}

// Create arma el borrador y lo confirma en una sola transacción.
// POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.builder.Build(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	view, err := h.commit.Commit(c.Context(), d, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view.ToResponse())
}

// NextNumber devuelve el siguiente identificador para el tipo.
// GET /api/orders/next-number?kind=PURCHASE
func (h *OrderHandler) NextNumber(c *fiber.Ctx) error {
	kind := strings.ToUpper(strings.TrimSpace(c.Query("kind")))
	number, err := h.numbering.Next(c.Context(), kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NextNumberResponse{Kind: kind, Number: number})
}

// GetByNumber devuelve la orden con sus líneas.
// GET /api/orders/:number
func (h *OrderHandler) GetByNumber(c *fiber.Ctx) error {
	view, err := h.query.GetByNumber(c.Context(), c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view.ToResponse())
}

// PDF descarga la representación impresa.
// GET /api/orders/:number/pdf
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	b, name, err := h.docs.OrderPDF(c.Context(), c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimePDF, name, b)
}

// XLSX exporta la orden a hoja de cálculo.
// GET /api/orders/:number/xlsx
func (h *OrderHandler) XLSX(c *fiber.Ctx) error {
	b, name, err := h.docs.OrderXLSX(c.Context(), c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimeXLSX, name, b)
}
