package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascendtech/locacao-pro/internal/application/auth"
	"github.com/ascendtech/locacao-pro/internal/application/billing"
	"github.com/ascendtech/locacao-pro/internal/application/cadastro"
	"github.com/ascendtech/locacao-pro/internal/application/contratos"
	"github.com/ascendtech/locacao-pro/internal/application/sequence"
	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/jsonstore"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/pdf"
	apphttp "github.com/ascendtech/locacao-pro/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// fakeCEP resolve qualquer CEP para um endereço fixo.
type fakeCEP struct{}

func (fakeCEP) Lookup(_ context.Context, cep string) (*cadastro.CEPAddress, error) {
	if cep == "00000000" {
		return nil, domain.ErrNotFound
	}
	return &cadastro.CEPAddress{
		CEP:      cep,
		Street:   "Rua das Palmeiras",
		District: "Centro",
		City:     "São José",
		State:    "SC",
	}, nil
}

// buildTestApp monta a aplicação completa sobre o armazenamento em memória e
// devolve o app junto com um token válido.
func buildTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	store := jsonstore.NewMemoryStore()
	alloc := sequence.NewAllocator(jsonstore.NewSequenceRepository(store))

	authUC := auth.NewAuthUseCase(
		jsonstore.NewUserRepository(store),
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "locacao-pro-test"},
	)
	contractRepo := jsonstore.NewContractRepository(store)

	deps := apphttp.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   cadastro.NewClientUseCase(jsonstore.NewClientRepository(store), fakeCEP{}),
		ContractUC: contratos.NewContractUseCase(contractRepo, jsonstore.NewClientRepository(store), alloc, pdf.NewContractRenderer()),
		InvoiceUC:  billing.NewInvoiceUseCase(jsonstore.NewInvoiceRepository(store), contractRepo, alloc, pdf.NewInvoiceRenderer()),
		JWTSecret:  testJWTSecret,
	}

	app := fiber.New()
	apphttp.Router(app, deps)

	ctx := context.Background()
	_, err := authUC.CreateUser(ctx, "Admin", "admin@rocker.com.br", "senha-forte")
	require.NoError(t, err)

	login := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		`{"email": "admin@rocker.com.br", "senha": "senha-forte"}`)
	defer login.Body.Close()
	require.Equal(t, http.StatusOK, login.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(login.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return app, out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func createClient(t *testing.T, app *fiber.App, token string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/clients", token, `{
		"tipo_pessoa": "Pessoa Física",
		"nome_razao_social": "João da Silva",
		"cpf_cnpj": "52998224725",
		"logradouro": "Rua das Palmeiras",
		"numero": "123",
		"bairro": "Centro",
		"cidade": "São José",
		"estado": "SC"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	return body["id"].(string)
}

func createContract(t *testing.T, app *fiber.App, token, clientID string) map[string]any {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/contracts", token, `{
		"id_cliente": "`+clientID+`",
		"tipo_contrato": "Locação",
		"itens_contrato": [
			{"produto": "BALANCIM SUSPENSO", "plataforma": "PLATAFORMA DE 3 METROS", "quantidade": 2, "valor_unitario": "150.00"}
		],
		"valor_entrega": "50.00",
		"valor_recolha": "50.00",
		"endereco_obra": "Av. das Torres, 1000",
		"contato_nome": "Mestre de obras",
		"contato_telefone": "(48) 99999-0000",
		"data_inicio": "2026-04-01",
		"data_assinatura": "2026-03-15"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisErradas(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		`{"email": "admin@rocker.com.br", "senha": "errada"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_CREDENTIALS")
}

func TestRotasProtegidas_SemToken(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, path := range []string{"/api/clients", "/api/contracts", "/api/invoices"} {
		resp := doJSON(t, app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestRotasProtegidas_TokenInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/clients", "token.invalido.aqui", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClients_CicloCompleto(t *testing.T) {
	app, token := buildTestApp(t)

	id := createClient(t, app, token)

	t.Run("documento duplicado", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/clients", token, `{
			"tipo_pessoa": "Pessoa Física",
			"nome_razao_social": "Outro Nome",
			"cpf_cnpj": "529.982.247-25"
		}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "DUPLICATE")
	})

	t.Run("documento inválido", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/clients", token, `{
			"tipo_pessoa": "Pessoa Física",
			"nome_razao_social": "Fulano",
			"cpf_cnpj": "111.111.111-11"
		}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("busca por fragmento", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/clients?q=jo%C3%A3o", token, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0]["id"])
	})

	t.Run("consulta por id inexistente", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/clients/ghost", token, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("consulta de CEP", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/cep/88100-000", token, "")
		body := decodeBody(t, resp)
		assert.Equal(t, "Rua das Palmeiras", body["logradouro"])

		missing := doJSON(t, app, http.MethodGet, "/api/cep/00000-000", token, "")
		defer missing.Body.Close()
		assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos
// ──────────────────────────────────────────────────────────────────────────────

func TestContracts_CicloCompleto(t *testing.T) {
	app, token := buildTestApp(t)
	clientID := createClient(t, app, token)

	contract := createContract(t, app, token, clientID)
	contractID := contract["id_contrato"].(string)
	assert.Equal(t, "Ativo", contract["status"])
	assert.Equal(t, "300.00", contract["valor_mensal"])
	assert.Equal(t, "400.00", contract["valor_total_geral"], "mensal + entrega + recolha")

	t.Run("busca de caixa única pelo nome do cliente", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/contracts?q=jo%C3%A3o", token, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, contractID, list[0]["id_contrato"])
	})

	t.Run("transição válida", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/api/contracts/"+contractID+"/status", token,
			`{"status": "Encerrado"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("transição proibida", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/api/contracts/"+contractID+"/status", token,
			`{"status": "Encerrado com Pendências"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "INVALID_TRANSITION")
	})

	t.Run("download do PDF", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/contracts/"+contractID+"/pdf", token, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "CONTRATO_")
		raw, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "%PDF", string(raw[:4]))
	})

	t.Run("exclusão", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/contracts/"+contractID, token, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		again := doJSON(t, app, http.MethodDelete, "/api/contracts/"+contractID, token, "")
		defer again.Body.Close()
		assert.Equal(t, http.StatusNotFound, again.StatusCode)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Faturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_CicloCompleto(t *testing.T) {
	app, token := buildTestApp(t)
	clientID := createClient(t, app, token)
	contract := createContract(t, app, token, clientID)
	contractID := contract["id_contrato"].(string)

	invoiceBody := `{
		"id_contrato": "` + contractID + `",
		"data_vencimento": "2026-06-10",
		"descricao_servico": "LOCAÇÃO DE EQUIPAMENTOS - MAIO/2026",
		"valor_total": "150.00",
		"forma_pagamento": "PIX"
	}`

	resp := doJSON(t, app, http.MethodPost, "/api/invoices", token, invoiceBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	invoice := decodeBody(t, resp)
	invoiceID := invoice["id_fatura"].(string)
	assert.Equal(t, "0000001", invoice["numero_fatura"])
	assert.Equal(t, "Pendente", invoice["status"])
	assert.Equal(t, contract["numero_contrato"], invoice["contrato_info"].(map[string]any)["numero"])

	t.Run("liquidação", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/api/invoices/"+invoiceID+"/status", token,
			`{"status": "Liquidada"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("contrato encerrado bloqueia emissão", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPatch, "/api/contracts/"+contractID+"/status", token,
			`{"status": "Encerrado"}`)
		status.Body.Close()

		resp := doJSON(t, app, http.MethodPost, "/api/invoices", token, invoiceBody)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "CONTRACT_NOT_ACTIVE")
	})

	t.Run("download do PDF", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+invoiceID+"/pdf", token, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "FATURA_0000001_")
	})

	t.Run("filtro por status", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/invoices?status=Liquidada", token, "")
		defer resp.Body.Close()
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, invoiceID, list[0]["id_fatura"])
	})
}
