package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio.
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrUserNotFound      = errors.New("funcionário não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("quantidade em estoque insuficiente")
	ErrEmptyBatch        = errors.New("nenhum item válido no lote")
)

// InsufficientStockError indica que uma saída excede o estoque atual.
// Available carrega a quantidade disponível no momento da verificação,
// para exibição ao solicitante.
type InsufficientStockError struct {
	ProductID string
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("quantidade em estoque insuficiente: disponível %s", e.Available.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError indica entrada malformada, com o campo violado.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
