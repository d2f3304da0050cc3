package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/transactions (movimento único IN ou OUT).
type CreateMovementRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	UserID    string          `json:"user_id" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// BatchItemRequest um item do lote de entradas. Itens inválidos são ignorados
// silenciosamente, não recusam o lote inteiro.
type BatchItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateBatchRequest body para POST /api/transactions/batch (somente entradas).
type CreateBatchRequest struct {
	UserID string             `json:"user_id" validate:"required"`
	Items  []BatchItemRequest `json:"items" validate:"required"`
}

// TransactionListQuery filtros de GET /api/transactions.
type TransactionListQuery struct {
	From      string `query:"from"`       // RFC 3339 ou YYYY-MM-DD
	To        string `query:"to"`         // RFC 3339 ou YYYY-MM-DD
	ProductID string `query:"product_id"`
	UserID    string `query:"user_id"`
	Text      string `query:"q"`
}

// TransactionResponse representação de Transaction para a API.
// product_name e user_name são os snapshots históricos, não joins.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
}
