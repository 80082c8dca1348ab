package entity

// InvoiceStatus status do ciclo de vida de uma fatura.
type InvoiceStatus string

// Status possíveis de uma fatura.
const (
	InvoiceStatusPending   InvoiceStatus = "Pendente"
	InvoiceStatusSettled   InvoiceStatus = "Liquidada"
	InvoiceStatusCancelled InvoiceStatus = "Cancelada"
)

// Formas de pagamento aceitas.
const (
	PaymentMethodBankSlip = "BOLETO BANCÁRIO"
	PaymentMethodPix      = "PIX"
	PaymentMethodTransfer = "TRANSFERÊNCIA"
)

// invoiceTransitions tabela explícita de transições permitidas:
// Pendente → Liquidada | Cancelada; reversão simétrica para Pendente.
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusPending:   {InvoiceStatusSettled, InvoiceStatusCancelled},
	InvoiceStatusSettled:   {InvoiceStatusPending},
	InvoiceStatusCancelled: {InvoiceStatusPending},
}

// Valid informa se o status é um dos três conhecidos.
func (s InvoiceStatus) Valid() bool {
	_, ok := invoiceTransitions[s]
	return ok
}

// CanTransitionTo informa se a transição s → target é permitida.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	for _, t := range invoiceTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ValidPaymentMethod informa se a forma de pagamento é aceita.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodBankSlip, PaymentMethodPix, PaymentMethodTransfer:
		return true
	}
	return false
}

// ContractInfo resumo do contrato embutido na fatura.
type ContractInfo struct {
	Number string `json:"numero"`
}

// Invoice representa uma fatura vinculada a um contrato.
// ClientInfo e ContractInfo são cópias no momento da emissão, não referências.
type Invoice struct {
	ID                 string        `json:"id_fatura"`
	Number             string        `json:"numero_fatura"` // 7 dígitos com zeros à esquerda, sem ano
	ContractID         string        `json:"id_contrato"`
	Status             InvoiceStatus `json:"status"`
	IssueDate          string        `json:"data_emissao"`    // ISO
	DueDate            string        `json:"data_vencimento"` // ISO
	ServiceDescription string        `json:"descricao_servico"`
	TotalValue         Money         `json:"valor_total"` // 2 casas, > 0
	PaymentMethod      string        `json:"forma_pagamento"`
	Notes              string        `json:"observacao,omitempty"`
	ClientInfo         Client        `json:"cliente_info"`
	ContractInfo       ContractInfo  `json:"contrato_info"`
}
