package jsonstore

import (
	"context"
	"strings"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação de UserRepository sobre o blob users.json.
type UserRepo struct {
	col *Collection[entity.User]
}

// NewUserRepository constrói o adaptador.
func NewUserRepository(store BlobStore) *UserRepo {
	return &UserRepo{col: NewCollection[entity.User](store, BlobUsers)}
}

// Create persiste um novo usuário; o email é único (comparação sem caixa).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.col.Mutate(ctx, func(records []entity.User) ([]entity.User, error) {
		for _, u := range records {
			if strings.EqualFold(u.Email, user.Email) {
				return nil, domain.ErrDuplicate
			}
		}
		return append(records, *user), nil
	})
}

// FindByEmail devolve o usuário ou (nil, nil) se não existir.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	records, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if strings.EqualFold(records[i].Email, email) {
			return &records[i], nil
		}
	}
	return nil, nil
}
