package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ascendtech/locacao-pro/internal/application/contratos"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

var _ contratos.ContractRenderer = (*ContractRenderer)(nil)

// ContractRenderer gera o instrumento de contrato usando Maroto v2.
type ContractRenderer struct{}

// NewContractRenderer constrói o renderizador.
func NewContractRenderer() *ContractRenderer { return &ContractRenderer{} }

// Render gera o PDF do contrato e devolve seus bytes.
func (r *ContractRenderer) Render(contract *entity.Contract) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "times", Size: 11}).
		WithTitle("Contrato "+contract.Number, true).
		WithAuthor(lessorName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(contract))
	m.AddRows(clauseHeading("DAS PARTES"))
	m.AddRows(paragraph(lessorClause(), 24))
	m.AddRows(paragraph(tenantClause(&contract.Client), 24))
	m.AddRows(paragraph("As partes acima qualificadas celebram o presente contrato, que se regerá pelas cláusulas e condições a seguir.", 10))

	m.AddRows(clauseHeading("CLÁUSULA PRIMEIRA – DO OBJETO"))
	m.AddRows(paragraph("1.1. O objeto deste contrato é a locação do(s) equipamento(s) descrito(s) na Cláusula Segunda, para ser(em) utilizado(s) exclusivamente no endereço da obra informado abaixo.", 12))

	m.AddRows(clauseHeading("CLÁUSULA SEGUNDA – DOS EQUIPAMENTOS, VALORES E CONDIÇÕES"))
	m.AddRows(paragraph("2.1. Equipamentos e Valores da Locação:", 6))
	m.AddRows(itemsHeaderRow())
	for i, item := range contract.Items {
		m.AddRows(itemRow(i, item))
	}

	m.AddRows(paragraph("2.2. Resumo Financeiro:", 8))
	m.AddRows(
		paragraph(fmt.Sprintf("Valor Total da Locação Mensal: R$ %s", formatBRL(contract.MonthlyTotal().Decimal)), 6),
		paragraph(fmt.Sprintf("Custo de Entrega (Frete): R$ %s", formatBRL(contract.DeliveryValue.Decimal)), 6),
		paragraph(fmt.Sprintf("Custo de Recolha (Frete): R$ %s", formatBRL(contract.PickupValue.Decimal)), 6),
	)

	m.AddRows(paragraph("2.3. Contato e Endereço da Obra:", 8))
	m.AddRows(
		paragraph("Contato Responsável na Obra: "+contract.SiteContactName, 6),
		paragraph("Telefone: "+contract.SiteContactPhone, 6),
		paragraph("Endereço da Obra: "+contract.SiteAddress, 6),
	)

	m.AddRows(clauseHeading("CLÁUSULA DÉCIMA SEGUNDA – DO FORO"))
	m.AddRows(paragraph("12.1. Fica eleito o foro central da comarca de São José para dirimir eventuais litígios oriundos deste contrato, se solução amigável não advir.", 12))

	m.AddRows(paragraph("E, por estarem justas e contratadas, as partes firmam o presente instrumento em 2 (duas) vias de igual teor e forma, na presença das duas testemunhas abaixo.", 12))

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s, %s.", lessorCity, contract.SignatureDate), props.Text{
			Size: 11, Align: align.Center, Top: 3,
		}),
	)))

	m.AddRows(signatureBlock(lessorName, "(LOCADORA)"))
	m.AddRows(signatureBlock(strings.ToUpper(contract.Client.LegalName), "(LOCATÁRIA)"))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// titleRow: "CONTRATO DE LOCAÇÃO Nº 00001-2026" centralizado.
func titleRow(contract *entity.Contract) core.Row {
	title := fmt.Sprintf("CONTRATO DE %s Nº %s", strings.ToUpper(contract.Type), contract.Number)
	return row.New(14).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 2,
		}),
	))
}

func clauseHeading(heading string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(heading, props.Text{Style: fontstyle.Bold, Size: 11, Top: 3}),
	))
}

// paragraph: parágrafo justificado de altura fixa.
func paragraph(content string, height float64) core.Row {
	return row.New(height).Add(col.New(12).Add(
		text.New(content, props.Text{Size: 11, Align: align.Justify, Top: 1}),
	))
}

// lessorClause qualificação fixa da locadora.
func lessorClause() string {
	return fmt.Sprintf("LOCADORA: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede na %s, neste ato representada na forma de seu contrato social.",
		lessorName, lessorCNPJ, lessorAddress)
}

// tenantClause qualificação da locatária, conforme o tipo de pessoa.
func tenantClause(client *entity.Client) string {
	if client.PersonType == entity.PersonTypeCompany {
		rep := client.LegalRep
		if rep == nil {
			rep = &entity.LegalRepresentative{}
		}
		return fmt.Sprintf("LOCATÁRIA: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede na %s, %s - %s, CEP: %s, neste ato representada por seu representante legal, %s, portador(a) do CPF sob o nº %s.",
			client.LegalName, client.TaxID, client.Address, client.City, client.State, client.PostalCode, rep.Name, rep.CPF)
	}
	return fmt.Sprintf("LOCATÁRIA: %s, inscrito(a) no CPF sob o nº %s, residente e domiciliado(a) na %s, %s - %s, CEP: %s.",
		client.LegalName, client.TaxID, client.Address, client.City, client.State, client.PostalCode)
}

// itemsHeaderRow cabeçalho da tabela de equipamentos.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 1, align.Center),
		h("Qtde", 1, align.Center),
		h("Equipamento", 6, align.Left),
		h("Vlr. Unit. Mensal (R$)", 2, align.Right),
		h("Vlr. Total Mensal (R$)", 2, align.Right),
	)
}

// itemRow uma linha da tabela: "2.1.N | qtde | PRODUTO COM PLATAFORMA | ...".
func itemRow(index int, item entity.ContractItem) core.Row {
	description := item.Product
	if item.Platform != "" {
		description += " COM " + item.Platform
	}
	return row.New(8).Add(
		col.New(1).Add(text.New(fmt.Sprintf("2.1.%d", index+1), props.Text{
			Size: 9, Align: align.Center, Top: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{
			Size: 9, Align: align.Center, Top: 1,
		})),
		col.New(6).Add(text.New(description, props.Text{
			Size: 9, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(formatBRL(item.UnitMonthlyValue.Decimal), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(formatBRL(item.Subtotal()), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// signatureBlock linha de assinatura com o nome da parte por baixo.
func signatureBlock(name, role string) core.Row {
	return row.New(26).Add(col.New(12).Add(
		text.New("_________________________________________", props.Text{
			Size: 11, Align: align.Center, Top: 12,
		}),
		text.New(name, props.Text{Size: 10, Align: align.Center, Top: 18}),
		text.New(role, props.Text{Size: 10, Align: align.Center, Top: 22}),
	))
}
