package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação.
const (
	MovementIN  = "IN"  // entrada (reposição)
	MovementOUT = "OUT" // saída (consumo)
)

// ValidMovementType informa se o tipo é IN ou OUT.
func ValidMovementType(t string) bool {
	return t == MovementIN || t == MovementOUT
}

// Transaction é um lançamento imutável do livro de movimentações.
// ProductName e UserName são snapshots tomados no momento do registro:
// renomear um produto ou funcionário não altera o histórico exibido.
type Transaction struct {
	ID          string
	Date        time.Time // momento da aplicação, não do envio da requisição
	ProductID   string
	ProductName string
	UserID      string
	UserName    string
	Type        string // IN, OUT
	Quantity    decimal.Decimal
}
