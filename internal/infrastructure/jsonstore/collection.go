package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ascendtech/locacao-pro/internal/domain"
)

// Collection visão tipada de um blob que contém um array JSON de registros.
type Collection[T any] struct {
	store BlobStore
	name  string
}

// NewCollection constrói a visão tipada sobre o blob nomeado.
func NewCollection[T any](store BlobStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Load lê e desserializa a coleção inteira.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	records, _, err := c.load(ctx)
	return records, err
}

func (c *Collection[T]) load(ctx context.Context) ([]T, int64, error) {
	data, gen, err := c.store.Download(ctx, c.name)
	if err != nil {
		return nil, 0, fmt.Errorf("jsonstore: ler %s: %w", c.name, err)
	}
	if emptyPayload(data) {
		return []T{}, gen, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("jsonstore: desserializar %s: %w", c.name, err)
	}
	return records, gen, nil
}

// Mutate aplica fn sobre a coleção inteira e grava o resultado condicionado à
// geração lida. Em caso de corrida (outra sessão gravou entre a leitura e a
// escrita) o ciclo é repetido com o conteúdo mais novo, até maxAttempts;
// esgotadas as tentativas, devolve domain.ErrVersionConflict.
// Um erro devolvido por fn interrompe o ciclo sem gravar nada.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		records, gen, err := c.load(ctx)
		if err != nil {
			return err
		}
		updated, err := fn(records)
		if err != nil {
			return err
		}
		data, err := encodeJSON(updated)
		if err != nil {
			return err
		}
		if _, err := c.store.Upload(ctx, c.name, data, gen); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				continue
			}
			return fmt.Errorf("jsonstore: gravar %s: %w", c.name, err)
		}
		return nil
	}
	return fmt.Errorf("jsonstore: %s: tentativas esgotadas: %w", c.name, domain.ErrVersionConflict)
}
