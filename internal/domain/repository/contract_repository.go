package repository

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// ContractRepository define o porto de persistência para contratos.
// GetByID devolve (nil, nil) quando o contrato não existe.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	List(ctx context.Context) ([]entity.Contract, error)
	// SetStatus aplica a transição de status de forma atômica sobre a coleção:
	// domain.ErrNotFound se o contrato não existe, domain.ErrConflict se a
	// tabela de transições não permite status atual → target.
	SetStatus(ctx context.Context, id string, target entity.ContractStatus) error
	// Delete remove definitivamente o contrato (sem lixeira nem auditoria).
	Delete(ctx context.Context, id string) error
}
