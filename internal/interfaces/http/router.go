package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascendtech/locacao-pro/internal/application/auth"
	"github.com/ascendtech/locacao-pro/internal/application/billing"
	"github.com/ascendtech/locacao-pro/internal/application/cadastro"
	"github.com/ascendtech/locacao-pro/internal/application/contratos"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ClientUC   *cadastro.ClientUseCase
	ContractUC *contratos.ContractUseCase
	InvoiceUC  *billing.InvoiceUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)

	// Consulta de CEP (auxiliar do cadastro)
	protected.Get("/cep/:cep", clientHandler.LookupCEP)

	// Contratos
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Patch("/:id/status", contractHandler.SetStatus)
	contracts.Delete("/:id", contractHandler.Delete)
	contracts.Get("/:id/pdf", contractHandler.DownloadPDF)

	// Faturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.SetStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
