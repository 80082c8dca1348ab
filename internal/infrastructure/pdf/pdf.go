// Package pdf gera os documentos impressos do sistema: o instrumento de
// contrato de locação e a fatura de locação, ambos em A4.
//
// Layout do contrato:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│             CONTRATO DE LOCAÇÃO Nº 00001-2026               │
//	│  DAS PARTES: locadora + locatária qualificadas              │
//	│  CLÁUSULA PRIMEIRA – DO OBJETO                              │
//	│  CLÁUSULA SEGUNDA: tabela de equipamentos + resumo + obra   │
//	│  CLÁUSULA DO FORO + fecho                                   │
//	│  São José, <data por extenso>  + blocos de assinatura       │
//	└─────────────────────────────────────────────────────────────┘
//
// Layout da fatura:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Locadora  │  FATURA DE LOCAÇÃO + Nº + Emissão      │
//	│  PAINÉIS: LOCADORA | DESTINATÁRIO                           │
//	│  TABELA: Nº Contrato / Forma de Pagamento / Vencimento      │
//	│  TABELA: Descrição | Valor (R$)                             │
//	│  Valor Total + OBSERVAÇÕES                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Dados fixos da locadora ───────────────────────────────────────────────────

const (
	lessorName      = "ROCKER LOCAÇÃO DE EQUIPAMENTOS PARA CONSTRUÇÃO LTDA"
	lessorShortName = "ROCKER LOCAÇÃO DE EQUP. PARA CONST. LTDA EPP"
	lessorCNPJ      = "15.413.157/0001-16"
	lessorAddress   = "Rua Carlos Adriano Rodrigues da Silva, Q40 L01, Bairro Potecas, São José/SC, CEP 88.107-493"
	lessorCity      = "São José"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// displayDate converte uma data ISO (2006-01-02) para DD/MM/AAAA; datas já em
// outro formato passam como estão.
func displayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// formatBRL formata um decimal no padrão brasileiro: 1234567.8 → "1.234.567,80".
func formatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	n := len(intPart)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
