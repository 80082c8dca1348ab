// Package sequence formata os números sequenciais de contratos e faturas a
// partir dos contadores persistidos. Números nunca são reutilizados, mesmo
// quando o documento correspondente falha depois da alocação.
package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/ascendtech/locacao-pro/internal/domain/repository"
)

// Allocator aloca números formatados para documentos novos.
type Allocator struct {
	seq repository.SequenceRepository
	now func() time.Time
}

// NewAllocator constrói o alocador.
func NewAllocator(seq repository.SequenceRepository) *Allocator {
	return &Allocator{seq: seq, now: time.Now}
}

// NextContractNumber devolve o próximo número de contrato no formato
// NNNNN-AAAA (sequencial com cinco dígitos, ano corrente).
func (a *Allocator) NextContractNumber(ctx context.Context) (string, error) {
	n, err := a.seq.NextContractNumber(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d-%d", n, a.now().Year()), nil
}

// NextInvoiceNumber devolve o próximo número de fatura: sete dígitos com
// zeros à esquerda, sem componente de ano.
func (a *Allocator) NextInvoiceNumber(ctx context.Context) (string, error) {
	n, err := a.seq.NextInvoiceNumber(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%07d", n), nil
}
