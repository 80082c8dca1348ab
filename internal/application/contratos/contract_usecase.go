// Package contratos casos de uso do ciclo de vida de contratos: geração com
// numeração sequencial, busca, mudança de status, exclusão e emissão do PDF.
package contratos

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

// ContractUseCase casos de uso de contratos.
type ContractUseCase struct {
	contracts repository.ContractRepository
	clients   repository.ClientRepository
	alloc     *sequence.Allocator
	renderer  ContractRenderer
	now       func() time.Time
}

// NewContractUseCase constrói o caso de uso.
func NewContractUseCase(
	contracts repository.ContractRepository,
	clients repository.ClientRepository,
	alloc *sequence.Allocator,
	renderer ContractRenderer,
) *ContractUseCase {
	return &ContractUseCase{
		contracts: contracts,
		clients:   clients,
		alloc:     alloc,
		renderer:  renderer,
		now:       time.Now,
	}
}

// Create gera um contrato novo: valida os dados, copia o cadastro do cliente
// para dentro do contrato e só então consome um número da sequência. O
// contrato nasce Ativo.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.ClientID, domain.ErrNotFound)
	}

	if in.TipoContrato != entity.ContractTypeLease && in.TipoContrato != entity.ContractTypeSale {
		return nil, fmt.Errorf("tipo de contrato %q: %w", in.TipoContrato, domain.ErrInvalidInput)
	}
	items, err := buildItems(in.Itens)
	if err != nil {
		return nil, err
	}
	if in.ValorEntrega.IsNegative() || in.ValorRecolha.IsNegative() {
		return nil, fmt.Errorf("valores de entrega e recolha não podem ser negativos: %w", domain.ErrInvalidInput)
	}

	startDate, err := time.Parse(isoDate, in.DataInicio)
	if err != nil {
		return nil, fmt.Errorf("data de início %q: %w", in.DataInicio, domain.ErrInvalidInput)
	}
	signatureDate, err := time.Parse(isoDate, in.DataAssinatura)
	if err != nil {
		return nil, fmt.Errorf("data de assinatura %q: %w", in.DataAssinatura, domain.ErrInvalidInput)
	}

	number, err := uc.alloc.NextContractNumber(ctx)
	if err != nil {
		return nil, err
	}

	contract := &entity.Contract{
		ID:               uuid.New().String(),
		Number:           number,
		GenerationDate:   uc.now().Format(isoDate),
		Status:           entity.ContractStatusActive,
		Type:             in.TipoContrato,
		Client:           *client,
		Items:            items,
		DeliveryValue:    entity.NewMoney(in.ValorEntrega),
		PickupValue:      entity.NewMoney(in.ValorRecolha),
		SiteAddress:      in.EnderecoObra,
		SiteContactName:  in.ContatoNome,
		SiteContactPhone: in.ContatoTelefone,
		LeaseStartDate:   startDate.Format("02/01/2006"),
		SignatureDate:    longDate(signatureDate),
	}
	if err := uc.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	return dto.NewContractResponse(contract), nil
}

// GetByID devolve o contrato ou domain.ErrNotFound.
func (uc *ContractUseCase) GetByID(ctx context.Context, id string) (*dto.ContractResponse, error) {
	contract, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewContractResponse(contract), nil
}

// Search aplica os filtros e devolve os contratos ordenados da geração mais
// recente para a mais antiga.
func (uc *ContractUseCase) Search(ctx context.Context, in dto.SearchContractsRequest) ([]dto.ContractResponse, error) {
	contracts, err := uc.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	texto := strings.ToLower(strings.TrimSpace(in.Texto))
	numero := strings.ToLower(strings.TrimSpace(in.Numero))
	nome := strings.ToLower(strings.TrimSpace(in.Nome))

	out := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		number := strings.ToLower(c.Number)
		name := strings.ToLower(c.Client.LegalName)
		// O termo único casa contra número OU nome do cliente.
		if texto != "" && !strings.Contains(number, texto) && !strings.Contains(name, texto) {
			continue
		}
		if numero != "" && !strings.Contains(number, numero) {
			continue
		}
		if nome != "" && !strings.Contains(name, nome) {
			continue
		}
		if in.Status != "" && c.Status != entity.ContractStatus(in.Status) {
			continue
		}
		if in.Data != "" && c.GenerationDate != in.Data {
			continue
		}
		out = append(out, *dto.NewContractResponse(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GenerationDate != out[j].GenerationDate {
			return out[i].GenerationDate > out[j].GenerationDate
		}
		return out[i].Number > out[j].Number
	})
	return out, nil
}

// SetStatus aplica uma transição de status. Status desconhecido devolve
// ErrInvalidInput; transição fora da tabela devolve ErrConflict.
func (uc *ContractUseCase) SetStatus(ctx context.Context, id, status string) error {
	target := entity.ContractStatus(status)
	if !target.Valid() {
		return fmt.Errorf("status %q: %w", status, domain.ErrInvalidInput)
	}
	return uc.contracts.SetStatus(ctx, id, target)
}

// Delete exclui o contrato definitivamente. O número consumido não volta para
// a sequência.
func (uc *ContractUseCase) Delete(ctx context.Context, id string) error {
	return uc.contracts.Delete(ctx, id)
}

// RenderPDF gera o documento do contrato e devolve o nome de arquivo sugerido
// junto com o conteúdo.
func (uc *ContractUseCase) RenderPDF(ctx context.Context, id string) (string, []byte, error) {
	contract, err := uc.get(ctx, id)
	if err != nil {
		return "", nil, err
	}
	data, err := uc.renderer.Render(contract)
	if err != nil {
		return "", nil, fmt.Errorf("gerar PDF do contrato %s: %w", contract.Number, err)
	}
	return contract.DocumentFileName(), data, nil
}

func (uc *ContractUseCase) get(ctx context.Context, id string) (*entity.Contract, error) {
	contract, err := uc.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, fmt.Errorf("contrato %s: %w", id, domain.ErrNotFound)
	}
	return contract, nil
}

// buildItems valida as linhas de equipamento; o contrato exige pelo menos uma.
func buildItems(in []dto.ContractItemRequest) ([]entity.ContractItem, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("contrato sem itens: %w", domain.ErrInvalidInput)
	}
	items := make([]entity.ContractItem, 0, len(in))
	for i, item := range in {
		if strings.TrimSpace(item.Produto) == "" {
			return nil, fmt.Errorf("item %d sem produto: %w", i+1, domain.ErrInvalidInput)
		}
		if item.Quantidade <= 0 {
			return nil, fmt.Errorf("item %d com quantidade %d: %w", i+1, item.Quantidade, domain.ErrInvalidInput)
		}
		if !item.ValorUnitario.IsPositive() {
			return nil, fmt.Errorf("item %d com valor unitário não positivo: %w", i+1, domain.ErrInvalidInput)
		}
		items = append(items, entity.ContractItem{
			Product:          strings.TrimSpace(item.Produto),
			Platform:         strings.TrimSpace(item.Plataforma),
			Quantity:         item.Quantidade,
			UnitMonthlyValue: entity.NewMoney(item.ValorUnitario),
		})
	}
	return items, nil
}
