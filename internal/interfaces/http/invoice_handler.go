package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascendtech/locacao-pro/internal/application/billing"
	"github.com/ascendtech/locacao-pro/internal/application/dto"
)

// InvoiceHandler trata as requisições HTTP de faturas.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler constrói o handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/invoices?numero=&status=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.SearchInvoicesRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	list, err := h.uc.Search(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(invoice)
}

// SetStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	filename, data, err := h.uc.RenderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
