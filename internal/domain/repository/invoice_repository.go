package repository

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// InvoiceRepository define o porto de persistência para faturas.
// GetByID devolve (nil, nil) quando a fatura não existe.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]entity.Invoice, error)
	// SetStatus aplica a transição de status de forma atômica sobre a coleção:
	// domain.ErrNotFound se a fatura não existe, domain.ErrConflict se a
	// tabela de transições não permite status atual → target.
	SetStatus(ctx context.Context, id string, target entity.InvoiceStatus) error
}
