// Package viacep consulta de endereço por CEP no serviço público ViaCEP.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ascendtech/locacao-pro/internal/application/cadastro"
	"github.com/ascendtech/locacao-pro/internal/domain"
)

var _ cadastro.CEPLookup = (*Client)(nil)

// Client cliente HTTP do ViaCEP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constrói o cliente. baseURL sem a rota /ws.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// viaCEPResponse corpo devolvido pelo serviço. Um CEP bem formado mas
// inexistente vem como {"erro": true} (ou "true", conforme a versão).
type viaCEPResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

// Lookup resolve um CEP de oito dígitos. A consulta é informativa: qualquer
// falha (CEP inexistente, serviço fora do ar, resposta malformada) devolve
// domain.ErrNotFound e o cadastro segue com preenchimento manual.
func (c *Client) Lookup(ctx context.Context, cep string) (*cadastro.CEPAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep: montar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep: consultar %s: %w", cep, domain.ErrNotFound)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep: CEP %s (HTTP %d): %w", cep, resp.StatusCode, domain.ErrNotFound)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("viacep: CEP %s: %w", cep, domain.ErrNotFound)
	}
	if errorFlagSet(body.Erro) {
		return nil, fmt.Errorf("viacep: CEP %s não existe: %w", cep, domain.ErrNotFound)
	}

	return &cadastro.CEPAddress{
		CEP:      body.CEP,
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}

// errorFlagSet interpreta o campo "erro", que o serviço já devolveu como
// booleano e como string. Só o valor verdadeiro indica CEP inexistente;
// ausente ou falso, a resposta é válida.
func errorFlagSet(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "true", `"true"`:
		return true
	}
	return false
}
