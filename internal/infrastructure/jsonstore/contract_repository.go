package jsonstore

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementação de ContractRepository sobre o blob contracts.json.
type ContractRepo struct {
	col *Collection[entity.Contract]
}

// NewContractRepository constrói o adaptador.
func NewContractRepository(store BlobStore) *ContractRepo {
	return &ContractRepo{col: NewCollection[entity.Contract](store, BlobContracts)}
}

// Create persiste um novo contrato.
func (r *ContractRepo) Create(ctx context.Context, contract *entity.Contract) error {
	return r.col.Mutate(ctx, func(records []entity.Contract) ([]entity.Contract, error) {
		return append(records, *contract), nil
	})
}

// GetByID devolve o contrato ou (nil, nil) se não existir.
func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
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

// List devolve todos os contratos na ordem de armazenamento.
func (r *ContractRepo) List(ctx context.Context) ([]entity.Contract, error) {
	return r.col.Load(ctx)
}

// SetStatus valida a transição contra o status vigente no momento da escrita,
// dentro do mesmo ciclo de escrita condicionada.
func (r *ContractRepo) SetStatus(ctx context.Context, id string, target entity.ContractStatus) error {
	return r.col.Mutate(ctx, func(records []entity.Contract) ([]entity.Contract, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			if !records[i].Status.CanTransitionTo(target) {
				return nil, domain.ErrConflict
			}
			records[i].Status = target
			return records, nil
		}
		return nil, domain.ErrNotFound
	})
}

// Delete remove definitivamente o contrato.
func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	return r.col.Mutate(ctx, func(records []entity.Contract) ([]entity.Contract, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}
