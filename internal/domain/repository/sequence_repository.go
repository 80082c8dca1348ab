package repository

import "context"

// SequenceRepository define o porto dos contadores sequenciais (config.json).
// Cada chamada incrementa o contador e só devolve o novo valor depois da
// escrita durável: se a persistência falhar, nenhum número é entregue.
type SequenceRepository interface {
	NextContractNumber(ctx context.Context) (int, error)
	NextInvoiceNumber(ctx context.Context) (int, error)
}
