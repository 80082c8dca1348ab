// Package billing casos de uso de faturamento: emissão de faturas vinculadas
// a contratos ativos, busca, mudança de status e geração do PDF.
package billing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ascendtech/locacao-pro/internal/application/dto"
	"github.com/ascendtech/locacao-pro/internal/application/sequence"
	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

const isoDate = "2006-01-02"

// InvoiceUseCase casos de uso de faturas.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	contracts repository.ContractRepository
	alloc     *sequence.Allocator
	renderer  InvoiceRenderer
	now       func() time.Time
}

// NewInvoiceUseCase constrói o caso de uso.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	contracts repository.ContractRepository,
	alloc *sequence.Allocator,
	renderer InvoiceRenderer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:  invoices,
		contracts: contracts,
		alloc:     alloc,
		renderer:  renderer,
		now:       time.Now,
	}
}

// Create emite uma fatura para um contrato Ativo. Cliente e número do
// contrato são copiados para dentro da fatura no momento da emissão. A fatura
// nasce Pendente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	contract, err := uc.contracts.GetByID(ctx, in.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, fmt.Errorf("contrato %s: %w", in.ContractID, domain.ErrNotFound)
	}
	if contract.Status != entity.ContractStatusActive {
		return nil, fmt.Errorf("contrato %s está %s: %w", contract.Number, contract.Status, domain.ErrInactiveContract)
	}

	if strings.TrimSpace(in.DescricaoServico) == "" {
		return nil, fmt.Errorf("descrição do serviço obrigatória: %w", domain.ErrInvalidInput)
	}
	if !in.ValorTotal.IsPositive() {
		return nil, fmt.Errorf("valor total deve ser maior que zero: %w", domain.ErrInvalidInput)
	}
	if !entity.ValidPaymentMethod(in.FormaPagamento) {
		return nil, fmt.Errorf("forma de pagamento %q: %w", in.FormaPagamento, domain.ErrInvalidInput)
	}
	dueDate, err := time.Parse(isoDate, in.DataVencimento)
	if err != nil {
		return nil, fmt.Errorf("data de vencimento %q: %w", in.DataVencimento, domain.ErrInvalidInput)
	}

	number, err := uc.alloc.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		ID:                 uuid.New().String(),
		Number:             number,
		ContractID:         contract.ID,
		Status:             entity.InvoiceStatusPending,
		IssueDate:          uc.now().Format(isoDate),
		DueDate:            dueDate.Format(isoDate),
		ServiceDescription: strings.TrimSpace(in.DescricaoServico),
		TotalValue:         entity.NewMoney(in.ValorTotal.Round(2)),
		PaymentMethod:      in.FormaPagamento,
		Notes:              in.Observacao,
		ClientInfo:         contract.Client,
		ContractInfo:       entity.ContractInfo{Number: contract.Number},
	}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByID devolve a fatura ou domain.ErrNotFound.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	return uc.get(ctx, id)
}

// Search filtra por número (substring) e status (exato), ordenado da emissão
// mais recente para a mais antiga.
func (uc *InvoiceUseCase) Search(ctx context.Context, in dto.SearchInvoicesRequest) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}

	numero := strings.TrimSpace(in.Numero)
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if numero != "" && !strings.Contains(inv.Number, numero) {
			continue
		}
		if in.Status != "" && inv.Status != entity.InvoiceStatus(in.Status) {
			continue
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IssueDate != out[j].IssueDate {
			return out[i].IssueDate > out[j].IssueDate
		}
		return out[i].Number > out[j].Number
	})
	return out, nil
}

// SetStatus aplica uma transição de status da fatura.
func (uc *InvoiceUseCase) SetStatus(ctx context.Context, id, status string) error {
	target := entity.InvoiceStatus(status)
	if !target.Valid() {
		return fmt.Errorf("status %q: %w", status, domain.ErrInvalidInput)
	}
	return uc.invoices.SetStatus(ctx, id, target)
}

// RenderPDF gera o documento da fatura e devolve o nome de arquivo sugerido
// junto com o conteúdo.
func (uc *InvoiceUseCase) RenderPDF(ctx context.Context, id string) (string, []byte, error) {
	invoice, err := uc.get(ctx, id)
	if err != nil {
		return "", nil, err
	}
	data, err := uc.renderer.Render(invoice)
	if err != nil {
		return "", nil, fmt.Errorf("gerar PDF da fatura %s: %w", invoice.Number, err)
	}
	return invoice.DocumentFileName(), data, nil
}

func (uc *InvoiceUseCase) get(ctx context.Context, id string) (*entity.Invoice, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("fatura %s: %w", id, domain.ErrNotFound)
	}
	return invoice, nil
}
