package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascendtech/locacao-pro/internal/application/cadastro"
	"github.com/ascendtech/locacao-pro/internal/application/dto"
)

// ClientHandler trata as requisições HTTP do cadastro de clientes.
type ClientHandler struct {
	uc *cadastro.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *cadastro.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients?q=<nome ou documento>
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(client)
}

// LookupCEP GET /api/cep/:cep
func (h *ClientHandler) LookupCEP(c *fiber.Ctx) error {
	out, err := h.uc.LookupCEP(c.Context(), c.Params("cep"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
