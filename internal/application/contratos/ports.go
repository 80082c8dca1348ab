package contratos

import "github.com/ascendtech/locacao-pro/internal/domain/entity"

// ContractRenderer porto de geração do documento do contrato (PDF).
type ContractRenderer interface {
	Render(contract *entity.Contract) ([]byte, error)
}
