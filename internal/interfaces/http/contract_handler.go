package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascendtech/locacao-pro/internal/application/contratos"
	"github.com/ascendtech/locacao-pro/internal/application/dto"
)

// ContractHandler trata as requisições HTTP de contratos.
type ContractHandler struct {
	uc *contratos.ContractUseCase
}

// NewContractHandler constrói o handler.
func NewContractHandler(uc *contratos.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create POST /api/contracts
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	contract, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

// List GET /api/contracts?numero=&nome=&status=&data=
func (h *ContractHandler) List(c *fiber.Ctx) error {
	var in dto.SearchContractsRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	list, err := h.uc.Search(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/contracts/:id
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	contract, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(contract)
}

// SetStatus PATCH /api/contracts/:id/status
func (h *ContractHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/contracts/:id
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/contracts/:id/pdf
func (h *ContractHandler) DownloadPDF(c *fiber.Ctx) error {
	filename, data, err := h.uc.RenderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
