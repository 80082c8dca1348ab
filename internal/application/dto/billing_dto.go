package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// CreateInvoiceRequest body para POST /api/invoices. O contrato precisa estar
// Ativo; a data de vencimento chega em ISO (2006-01-02).
type CreateInvoiceRequest struct {
	ContractID       string          `json:"id_contrato"`
	DataVencimento   string          `json:"data_vencimento"`
	DescricaoServico string          `json:"descricao_servico"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
	FormaPagamento   string          `json:"forma_pagamento"`
	Observacao       string          `json:"observacao,omitempty"`
}

// SearchInvoicesRequest filtros de GET /api/invoices.
type SearchInvoicesRequest struct {
	Numero string `query:"numero"`
	Status string `query:"status"`
}

// InvoiceResponse fatura em respostas; mesmo formato do registro persistido.
type InvoiceResponse = entity.Invoice
