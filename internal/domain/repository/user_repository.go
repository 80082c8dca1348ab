package repository

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// UserRepository define o porto de persistência para usuários de acesso.
// FindByEmail devolve (nil, nil) quando o usuário não existe.
type UserRepository interface {
	// Create persiste um novo usuário; domain.ErrDuplicate se o email já existe.
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
