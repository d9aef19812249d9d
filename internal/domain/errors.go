package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("o e-mail já está em uso")
	ErrEmailNotVerified    = errors.New("e-mail não verificado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrInsufficientStock   = errors.New("quantidade insuficiente em estoque")
	ErrInvalidMovementType = errors.New("tipo de movimentação inválido")
	// ErrTxConflict indica falha de serialização/lock na transação.
	// A operação pode ser repetida pelo cliente; o núcleo nunca repete sozinho.
	ErrTxConflict = errors.New("conflito de transação, tente novamente")
)

// InsufficientStockError carrega a quantidade disponível e a solicitada para
// que a camada HTTP possa devolver ambas ao cliente.
type InsufficientStockError struct {
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("quantidade insuficiente em estoque: disponível %d, solicitado %d", e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
