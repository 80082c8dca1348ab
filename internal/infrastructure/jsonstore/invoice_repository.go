package jsonstore

import (
	"context"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementação de InvoiceRepository sobre o blob invoices.json.
type InvoiceRepo struct {
	col *Collection[entity.Invoice]
}

// NewInvoiceRepository constrói o adaptador.
func NewInvoiceRepository(store BlobStore) *InvoiceRepo {
	return &InvoiceRepo{col: NewCollection[entity.Invoice](store, BlobInvoices)}
}

// Create persiste uma nova fatura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.col.Mutate(ctx, func(records []entity.Invoice) ([]entity.Invoice, error) {
		return append(records, *invoice), nil
	})
}

// GetByID devolve a fatura ou (nil, nil) se não existir.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
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

// List devolve todas as faturas na ordem de armazenamento.
func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	return r.col.Load(ctx)
}

// SetStatus valida a transição contra o status vigente no momento da escrita.
func (r *InvoiceRepo) SetStatus(ctx context.Context, id string, target entity.InvoiceStatus) error {
	return r.col.Mutate(ctx, func(records []entity.Invoice) ([]entity.Invoice, error) {
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
