package contratos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascendtech/locacao-pro/internal/application/dto"
	"github.com/ascendtech/locacao-pro/internal/application/sequence"
	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/jsonstore"
)

// fakeRenderer devolve um conteúdo fixo e registra o contrato recebido.
type fakeRenderer struct {
	rendered *entity.Contract
}

func (f *fakeRenderer) Render(c *entity.Contract) ([]byte, error) {
	f.rendered = c
	return []byte("%PDF-1.7 conteudo"), nil
}

type fixture struct {
	uc       *ContractUseCase
	clients  *jsonstore.ClientRepo
	renderer *fakeRenderer
	client   entity.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := jsonstore.NewMemoryStore()
	clients := jsonstore.NewClientRepository(store)
	renderer := &fakeRenderer{}
	uc := NewContractUseCase(
		jsonstore.NewContractRepository(store),
		clients,
		sequence.NewAllocator(jsonstore.NewSequenceRepository(store)),
		renderer,
	)
	uc.now = func() time.Time { return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC) }

	client := entity.Client{
		ID:         "cli-1",
		PersonType: entity.PersonTypeIndividual,
		LegalName:  "João da Silva",
		TaxID:      "529.982.247-25",
	}
	require.NoError(t, clients.Create(context.Background(), &client))
	return &fixture{uc: uc, clients: clients, renderer: renderer, client: client}
}

func validRequest() dto.CreateContractRequest {
	return dto.CreateContractRequest{
		ClientID:     "cli-1",
		TipoContrato: entity.ContractTypeLease,
		Itens: []dto.ContractItemRequest{
			{Produto: "BALANCIM SUSPENSO ULTRALEVE MANUAL", Plataforma: "PLATAFORMA DE 3 METROS", Quantidade: 2, ValorUnitario: decimal.RequireFromString("150.00")},
			{Produto: "CADEIRA SUSPENSA", Quantidade: 1, ValorUnitario: decimal.RequireFromString("80.00")},
		},
		ValorEntrega:    decimal.RequireFromString("50.00"),
		ValorRecolha:    decimal.RequireFromString("50.00"),
		EnderecoObra:    "Av. das Torres, 1000",
		ContatoNome:     "Mestre de obras",
		ContatoTelefone: "(48) 99999-0000",
		DataInicio:      "2026-04-01",
		DataAssinatura:  "2026-03-15",
	}
}

func TestCreate_ContratoCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("00001-%d", year), got.Number)
	assert.Equal(t, entity.ContractStatusActive, got.Status, "contrato nasce Ativo")
	assert.Equal(t, "2026-03-15", got.GenerationDate)
	assert.Equal(t, "01/04/2026", got.LeaseStartDate)
	assert.Equal(t, "15 de março de 2026", got.SignatureDate)
	assert.Equal(t, f.client, got.Client, "o cadastro do cliente é copiado para dentro do contrato")
	assert.True(t, got.ValorMensal.Equal(decimal.RequireFromString("380.00")))
	assert.True(t, got.ValorTotalGeral.Equal(decimal.RequireFromString("480.00")))
}

func TestCreate_Invalido(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*dto.CreateContractRequest)
		wantErr error
	}{
		{"cliente inexistente", func(in *dto.CreateContractRequest) { in.ClientID = "ghost" }, domain.ErrNotFound},
		{"tipo desconhecido", func(in *dto.CreateContractRequest) { in.TipoContrato = "Empréstimo" }, domain.ErrInvalidInput},
		{"sem itens", func(in *dto.CreateContractRequest) { in.Itens = nil }, domain.ErrInvalidInput},
		{"quantidade zero", func(in *dto.CreateContractRequest) { in.Itens[0].Quantidade = 0 }, domain.ErrInvalidInput},
		{"valor unitário zero", func(in *dto.CreateContractRequest) { in.Itens[0].ValorUnitario = decimal.Zero }, domain.ErrInvalidInput},
		{"frete negativo", func(in *dto.CreateContractRequest) { in.ValorEntrega = decimal.RequireFromString("-1") }, domain.ErrInvalidInput},
		{"data de início malformada", func(in *dto.CreateContractRequest) { in.DataInicio = "01/04/2026" }, domain.ErrInvalidInput},
		{"data de assinatura malformada", func(in *dto.CreateContractRequest) { in.DataAssinatura = "amanhã" }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRequest()
			tc.mutate(&in)
			_, err := f.uc.Create(ctx, in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// Excluir um contrato não devolve o número dele para a sequência.
func TestCreate_NumeroNuncaReutilizado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, first.ID))

	third, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("00003-%d", time.Now().Year()), third.Number)
}

func TestSetStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)

	t.Run("status desconhecido", func(t *testing.T) {
		err := f.uc.SetStatus(ctx, created.ID, "Suspenso")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("encerrar e reativar", func(t *testing.T) {
		require.NoError(t, f.uc.SetStatus(ctx, created.ID, string(entity.ContractStatusClosed)))

		// Entre encerramentos não há transição direta.
		err := f.uc.SetStatus(ctx, created.ID, string(entity.ContractStatusClosedPending))
		assert.ErrorIs(t, err, domain.ErrConflict)

		require.NoError(t, f.uc.SetStatus(ctx, created.ID, string(entity.ContractStatusActive)))
	})

	t.Run("contrato inexistente", func(t *testing.T) {
		err := f.uc.SetStatus(ctx, "ghost", string(entity.ContractStatusClosed))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Segundo contrato gerado num dia posterior.
	f.uc.now = func() time.Time { return time.Date(2026, time.March, 20, 10, 0, 0, 0, time.UTC) }
	second, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, f.uc.SetStatus(ctx, second.ID, string(entity.ContractStatusClosed)))

	t.Run("sem filtros, mais recente primeiro", func(t *testing.T) {
		got, err := f.uc.Search(ctx, dto.SearchContractsRequest{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, first.ID, got[1].ID)
	})

	t.Run("termo único casa número ou nome do cliente", func(t *testing.T) {
		// Termo que só existe no nome do cliente ainda encontra os contratos.
		got, err := f.uc.Search(ctx, dto.SearchContractsRequest{Texto: "joão"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		// E o mesmo campo de busca serve para o número.
		got, err = f.uc.Search(ctx, dto.SearchContractsRequest{Texto: "00001"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)

		got, err = f.uc.Search(ctx, dto.SearchContractsRequest{Texto: "inexistente"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("número por substring sem caixa", func(t *testing.T) {
		got, err := f.uc.Search(ctx, dto.SearchContractsRequest{Numero: "00001"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)
	})

	t.Run("nome do cliente por substring", func(t *testing.T) {
		got, err := f.uc.Search(ctx, dto.SearchContractsRequest{Nome: "joão"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("status exato", func(t *testing.T) {
		got, err := f.uc.Search(ctx, dto.SearchContractsRequest{Status: string(entity.ContractStatusClosed)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.ID, got[0].ID)
	})

	t.Run("data de geração exata", func(t *testing.T) {
		got, err := f.uc.Search(ctx, dto.SearchContractsRequest{Data: "2026-03-15"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)
	})
}

func TestRenderPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, validRequest())
	require.NoError(t, err)

	name, data, err := f.uc.RenderPDF(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONTRATO_"+created.Number+"_João_da_Silva.pdf", name)
	assert.NotEmpty(t, data)
	require.NotNil(t, f.renderer.rendered)
	assert.Equal(t, created.ID, f.renderer.rendered.ID)

	_, _, err = f.uc.RenderPDF(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "02 de janeiro de 2026", longDate(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de dezembro de 2025", longDate(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
