package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ascendtech/locacao-pro/internal/application/billing"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

var _ billing.InvoiceRenderer = (*InvoiceRenderer)(nil)

// InvoiceRenderer gera a fatura de locação usando Maroto v2.
type InvoiceRenderer struct{}

// NewInvoiceRenderer constrói o renderizador.
func NewInvoiceRenderer() *InvoiceRenderer { return &InvoiceRenderer{} }

// Render gera o PDF da fatura e devolve seus bytes.
func (r *InvoiceRenderer) Render(invoice *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "arial", Size: 10}).
		WithTitle("Fatura "+invoice.Number, true).
		WithAuthor(lessorName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(invoiceHeaderRow(invoice))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(paymentRows(invoice)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(serviceHeaderRow(), serviceRow(invoice))
	m.AddRows(totalRow(invoice))
	if invoice.Notes != "" {
		m.AddRows(notesRow(invoice))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar fatura: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// invoiceHeaderRow: locadora (esq) e título + número + emissão (dir).
func invoiceHeaderRow(invoice *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("Rocker Equipamentos", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Locação de equipamentos para construção", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FATURA DE LOCAÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Nº da Fatura: "+invoice.Number, props.Text{
				Size: 9, Align: align.Right, Top: 10,
			}),
			text.New("Data de Emissão: "+displayDate(invoice.IssueDate), props.Text{
				Size: 9, Align: align.Right, Top: 15,
			}),
		),
	)
}

// partiesRow: painéis lado a lado de locadora e destinatário.
func partiesRow(invoice *entity.Invoice) core.Row {
	client := invoice.ClientInfo
	return row.New(26).Add(
		col.New(6).Add(
			text.New("LOCADORA", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
			text.New(lessorShortName, props.Text{Size: 9, Top: 6}),
			text.New("CNPJ: "+lessorCNPJ, props.Text{Size: 9, Top: 11}),
			text.New(lessorAddress, props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("DESTINATÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
			text.New("Razão Social/Nome: "+client.LegalName, props.Text{Size: 9, Top: 6}),
			text.New("CNPJ/CPF: "+client.TaxID, props.Text{Size: 9, Top: 11}),
			text.New("Endereço: "+nonEmpty(client.Address, "—"), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

// paymentRows: contrato de origem, forma de pagamento e vencimento.
func paymentRows(invoice *entity.Invoice) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(9).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}
	return []core.Row{
		field("Nº Contrato:", invoice.ContractInfo.Number),
		field("Forma de Pagamento:", invoice.PaymentMethod),
		field("Data de Vencimento:", displayDate(invoice.DueDate)),
	}
}

func serviceHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("Descrição", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Left: 1,
		})),
		col.New(3).Add(text.New("Valor (R$)", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

func serviceRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New(invoice.ServiceDescription, props.Text{
			Size: 9, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(formatBRL(invoice.TotalValue.Decimal), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New("Valor Total: R$ "+formatBRL(invoice.TotalValue.Decimal), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

func notesRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("OBSERVAÇÕES: "+invoice.Notes, props.Text{
			Size: 9, Top: 4, Color: colorGray,
		}),
	))
}
