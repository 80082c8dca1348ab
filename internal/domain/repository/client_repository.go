package repository

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// ClientRepository define o porto de persistência para clientes.
// GetByID devolve (nil, nil) quando o cliente não existe.
type ClientRepository interface {
	// Create persiste um novo cliente; devolve domain.ErrDuplicate quando já
	// existe um cliente com o mesmo cpf_cnpj canônico.
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
}
