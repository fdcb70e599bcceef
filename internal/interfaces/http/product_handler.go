package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/catalog"
	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/dto"
)

// CatalogHandler productos y terceros (protegido).
type CatalogHandler struct {
	uc   *catalog.UseCase
	docs *documents.UseCase
	now  func() time.Time
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase, docs *documents.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc, docs: docs, now: time.Now}
}

// CreateProduct POST /api/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateProduct(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts GET /api/products?limit=&offset=
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	out, err := h.uc.ListProducts(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProduct GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProduct PUT /api/products/:id (solo los campos enviados)
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProduct(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProductsXLSX GET /api/products/export.xlsx
func (h *CatalogHandler) ProductsXLSX(c *fiber.Ctx) error {
	b, name, err := h.docs.ProductsXLSX(c.Context(), h.now())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimeXLSX, name, b)
}

// CreateParty POST /api/parties
func (h *CatalogHandler) CreateParty(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateParty(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListParties GET /api/parties?kind=SUPPLIER&limit=&offset=
func (h *CatalogHandler) ListParties(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	out, err := h.uc.ListParties(c.Context(), c.Query("kind"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
