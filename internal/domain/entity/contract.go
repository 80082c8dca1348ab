package entity

import "github.com/shopspring/decimal"

// ContractStatus status do ciclo de vida de um contrato.
type ContractStatus string

// Status possíveis de um contrato.
const (
	ContractStatusActive        ContractStatus = "Ativo"
	ContractStatusClosed        ContractStatus = "Encerrado"
	ContractStatusClosedPending ContractStatus = "Encerrado com Pendências"
)

// Tipos de contrato.
const (
	ContractTypeLease = "Locação"
	ContractTypeSale  = "Venda"
)

// contractTransitions tabela explícita de transições permitidas.
// Encerrado → Encerrado com Pendências (e vice-versa) não existe como ação:
// um contrato encerrado só pode ser reativado.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusActive:        {ContractStatusClosed, ContractStatusClosedPending},
	ContractStatusClosed:        {ContractStatusActive},
	ContractStatusClosedPending: {ContractStatusActive},
}

// Valid informa se o status é um dos três conhecidos.
func (s ContractStatus) Valid() bool {
	_, ok := contractTransitions[s]
	return ok
}

// CanTransitionTo informa se a transição s → target é permitida.
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	for _, t := range contractTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ContractItem linha de equipamento do contrato.
type ContractItem struct {
	Product          string `json:"produto"`
	Platform         string `json:"plataforma"`
	Quantity         int    `json:"quantidade"`
	UnitMonthlyValue Money  `json:"valor_unitario"`
}

// Subtotal valor mensal da linha (quantidade × valor unitário).
func (i ContractItem) Subtotal() decimal.Decimal {
	return i.UnitMonthlyValue.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Contract representa um contrato de locação ou venda.
// Cliente é uma cópia ("snapshot") do cadastro no momento da geração:
// alterações posteriores no cliente não mudam contratos já emitidos.
type Contract struct {
	ID               string         `json:"id_contrato"`
	Number           string         `json:"numero_contrato"` // NNNNN-AAAA, sequencial, nunca reutilizado
	GenerationDate   string         `json:"data_geracao"`    // ISO (2006-01-02)
	Status           ContractStatus `json:"status"`
	Type             string         `json:"tipo_contrato"`
	Client           Client         `json:"cliente"`
	Items            []ContractItem `json:"itens_contrato"`
	DeliveryValue    Money          `json:"valor_entrega"`
	PickupValue      Money          `json:"valor_recolha"`
	SiteAddress      string         `json:"endereco_obra"`
	SiteContactName  string         `json:"contato_nome"`
	SiteContactPhone string         `json:"contato_telefone"`
	LeaseStartDate   string         `json:"data_inicio"`     // DD/MM/AAAA
	SignatureDate    string         `json:"data_assinatura"` // por extenso ("02 de janeiro de 2026")
}

// MonthlyTotal soma dos subtotais mensais das linhas.
func (c *Contract) MonthlyTotal() Money {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return NewMoney(total)
}

// GrandTotal total mensal mais frete de entrega e de recolha.
func (c *Contract) GrandTotal() Money {
	return NewMoney(c.MonthlyTotal().Add(c.DeliveryValue.Decimal).Add(c.PickupValue.Decimal))
}
