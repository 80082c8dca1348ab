package billing

import "github.com/ascendtech/locacao-pro/internal/domain/entity"

// InvoiceRenderer porto de geração do documento da fatura (PDF).
type InvoiceRenderer interface {
	Render(invoice *entity.Invoice) ([]byte, error)
}
