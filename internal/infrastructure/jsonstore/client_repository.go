package jsonstore

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository sobre o blob clients.json.
type ClientRepo struct {
	col *Collection[entity.Client]
}

// NewClientRepository constrói o adaptador.
func NewClientRepository(store BlobStore) *ClientRepo {
	return &ClientRepo{col: NewCollection[entity.Client](store, BlobClients)}
}

// Create persiste um novo cliente; a checagem de duplicidade do cpf_cnpj
// canônico acontece dentro do mesmo ciclo de escrita condicionada.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	return r.col.Mutate(ctx, func(records []entity.Client) ([]entity.Client, error) {
		for _, c := range records {
			if c.TaxID == client.TaxID {
				return nil, domain.ErrDuplicate
			}
		}
		return append(records, *client), nil
	})
}

// GetByID devolve o cliente ou (nil, nil) se não existir.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	records, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

// List devolve todos os clientes na ordem de armazenamento.
func (r *ClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	return r.col.Load(ctx)
}
