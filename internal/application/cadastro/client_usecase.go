// Package cadastro casos de uso do cadastro de clientes: criação com
// validação de CPF/CNPJ, consulta e busca.
package cadastro

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ascendtech/locacao-pro/internal/application/dto"
	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/docbr"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
	cep  CEPLookup
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository, cep CEPLookup) *ClientUseCase {
	return &ClientUseCase{repo: repo, cep: cep}
}

// Create valida e cadastra um novo cliente. O CPF/CNPJ é normalizado para a
// forma mascarada antes de persistir; um documento já cadastrado devolve
// domain.ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.TipoPessoa != entity.PersonTypeIndividual && in.TipoPessoa != entity.PersonTypeCompany {
		return nil, fmt.Errorf("tipo de pessoa %q: %w", in.TipoPessoa, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.NomeRazaoSocial) == "" {
		return nil, fmt.Errorf("nome/razão social obrigatório: %w", domain.ErrInvalidInput)
	}

	taxID, err := docbr.FormatDocumento(in.CPFCNPJ, in.TipoPessoa)
	if err != nil {
		return nil, err
	}

	client := &entity.Client{
		ID:         uuid.New().String(),
		PersonType: in.TipoPessoa,
		LegalName:  strings.TrimSpace(in.NomeRazaoSocial),
		TaxID:      taxID,
		Email:      in.Email,
		Phone:      in.Telefone,
		PostalCode: in.CEP,
		City:       in.Cidade,
		State:      in.Estado,
		Address:    joinAddress(in.Logradouro, in.Numero, in.Bairro),
	}

	// Data de nascimento só se aplica a Pessoa Física; para Pessoa Jurídica a
	// do representante legal é que conta.
	if in.TipoPessoa == entity.PersonTypeIndividual {
		client.BirthDate = in.DataNascimento
	}

	if in.TipoPessoa == entity.PersonTypeCompany {
		rep, err := buildLegalRep(in.RepresentanteLegal)
		if err != nil {
			return nil, err
		}
		client.LegalRep = rep
	}

	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID devolve o cliente ou domain.ErrNotFound.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return client, nil
}

// Search filtra por nome (substring, sem distinção de caixa) ou pelos dígitos
// do CPF/CNPJ. Termo vazio devolve todos. O resultado sai ordenado por
// nome/razão social.
func (uc *ClientUseCase) Search(ctx context.Context, term string) ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	lowered := strings.ToLower(term)
	digits := docbr.ExtractDigits(term)

	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		if term == "" ||
			strings.Contains(strings.ToLower(c.LegalName), lowered) ||
			(digits != "" && strings.Contains(docbr.ExtractDigits(c.TaxID), digits)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].LegalName) < strings.ToLower(out[j].LegalName)
	})
	return out, nil
}

// LookupCEP resolve um CEP de oito dígitos em endereço.
func (uc *ClientUseCase) LookupCEP(ctx context.Context, cep string) (*dto.CEPResponse, error) {
	digits := docbr.ExtractDigits(cep)
	if len(digits) != 8 {
		return nil, fmt.Errorf("CEP %q: %w", cep, domain.ErrInvalidInput)
	}
	addr, err := uc.cep.Lookup(ctx, digits)
	if err != nil {
		return nil, err
	}
	return &dto.CEPResponse{
		CEP:        addr.CEP,
		Logradouro: addr.Street,
		Bairro:     addr.District,
		Cidade:     addr.City,
		Estado:     addr.State,
	}, nil
}

// buildLegalRep valida o representante legal obrigatório de Pessoa Jurídica.
func buildLegalRep(in *dto.LegalRepRequest) (*entity.LegalRepresentative, error) {
	if in == nil || strings.TrimSpace(in.Nome) == "" {
		return nil, fmt.Errorf("representante legal obrigatório para Pessoa Jurídica: %w", domain.ErrInvalidInput)
	}
	repCPF, err := docbr.FormatCPF(in.CPF)
	if err != nil {
		return nil, fmt.Errorf("CPF do representante legal: %w", err)
	}
	return &entity.LegalRepresentative{
		Name:      strings.TrimSpace(in.Nome),
		CPF:       repCPF,
		BirthDate: in.DataNascimento,
		Phone:     in.Telefone,
		Email:     in.Email,
	}, nil
}

// joinAddress monta "logradouro, número, bairro" ignorando partes vazias.
func joinAddress(parts ...string) string {
	filled := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, ", ")
}
