package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementação de SequenceRepository sobre o blob config.json.
// Diferente das coleções, o blob guarda um único objeto com os contadores.
type SequenceRepo struct {
	store BlobStore
}

// NewSequenceRepository constrói o adaptador.
func NewSequenceRepository(store BlobStore) *SequenceRepo {
	return &SequenceRepo{store: store}
}

// NextContractNumber incrementa ultimo_numero_contrato e devolve o novo valor.
func (r *SequenceRepo) NextContractNumber(ctx context.Context) (int, error) {
	return r.next(ctx, func(c *entity.SequenceCounters) *int { return &c.LastContractNumber })
}

// NextInvoiceNumber incrementa ultimo_numero_fatura e devolve o novo valor.
func (r *SequenceRepo) NextInvoiceNumber(ctx context.Context) (int, error) {
	return r.next(ctx, func(c *entity.SequenceCounters) *int { return &c.LastInvoiceNumber })
}

// next executa o ciclo ler-incrementar-gravar com escrita condicionada. O novo
// número só é devolvido depois da gravação durável: uma falha de persistência
// devolve erro e não entrega número nenhum.
func (r *SequenceRepo) next(ctx context.Context, pick func(*entity.SequenceCounters) *int) (int, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		data, gen, err := r.store.Download(ctx, BlobConfig)
		if err != nil {
			return 0, fmt.Errorf("jsonstore: ler %s: %w", BlobConfig, err)
		}
		var counters entity.SequenceCounters
		if !emptyPayload(data) {
			if err := json.Unmarshal(data, &counters); err != nil {
				return 0, fmt.Errorf("jsonstore: desserializar %s: %w", BlobConfig, err)
			}
		}
		counter := pick(&counters)
		*counter++
		out, err := encodeJSON(counters)
		if err != nil {
			return 0, err
		}
		if _, err := r.store.Upload(ctx, BlobConfig, out, gen); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				continue
			}
			return 0, fmt.Errorf("jsonstore: gravar %s: %w", BlobConfig, err)
		}
		return *counter, nil
	}
	return 0, fmt.Errorf("jsonstore: %s: tentativas esgotadas: %w", BlobConfig, domain.ErrVersionConflict)
}
