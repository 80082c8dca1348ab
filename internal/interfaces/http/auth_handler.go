package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascendtech/locacao-pro/internal/application/auth"
	"github.com/ascendtech/locacao-pro/internal/application/dto"
)

// AuthHandler trata as requisições HTTP de autenticação.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
