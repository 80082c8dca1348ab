package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// ContractItemRequest linha de equipamento no pedido de contrato.
type ContractItemRequest struct {
	Produto       string          `json:"produto"`
	Plataforma    string          `json:"plataforma"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// CreateContractRequest body para POST /api/contracts. As datas chegam em ISO
// (2006-01-02); a formatação de exibição é responsabilidade do servidor.
type CreateContractRequest struct {
	ClientID        string                `json:"id_cliente"`
	TipoContrato    string                `json:"tipo_contrato"`
	Itens           []ContractItemRequest `json:"itens_contrato"`
	ValorEntrega    decimal.Decimal       `json:"valor_entrega"`
	ValorRecolha    decimal.Decimal       `json:"valor_recolha"`
	EnderecoObra    string                `json:"endereco_obra"`
	ContatoNome     string                `json:"contato_nome"`
	ContatoTelefone string                `json:"contato_telefone"`
	DataInicio      string                `json:"data_inicio"`
	DataAssinatura  string                `json:"data_assinatura"`
}

// SearchContractsRequest filtros de GET /api/contracts. Texto (q) casa por
// substring sem distinção de caixa contra o número OU o nome do cliente — a
// busca de caixa única da tela de gestão. Número e nome restringem cada campo
// isoladamente; status e data são comparações exatas.
type SearchContractsRequest struct {
	Texto  string `query:"q"`
	Numero string `query:"numero"`
	Nome   string `query:"nome"`
	Status string `query:"status"`
	Data   string `query:"data"`
}

// ContractResponse contrato em respostas, com os totais calculados.
type ContractResponse struct {
	entity.Contract
	ValorMensal     entity.Money `json:"valor_mensal"`
	ValorTotalGeral entity.Money `json:"valor_total_geral"`
}

// NewContractResponse monta a resposta a partir da entidade.
func NewContractResponse(c *entity.Contract) *ContractResponse {
	return &ContractResponse{
		Contract:        *c,
		ValorMensal:     c.MonthlyTotal(),
		ValorTotalGeral: c.GrandTotal(),
	}
}
