package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound         = errors.New("registro não encontrado")
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidDocument  = errors.New("CPF/CNPJ inválido")
	ErrDuplicate        = errors.New("registro duplicado")
	ErrUnauthorized     = errors.New("não autorizado")
	ErrForbidden        = errors.New("acesso negado")
	ErrConflict         = errors.New("transição de status não permitida")
	ErrInactiveContract = errors.New("contrato não está ativo")
	ErrVersionConflict  = errors.New("conflito de versão na escrita da coleção")
)
