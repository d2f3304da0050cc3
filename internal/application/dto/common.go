package dto

import "github.com/shopspring/decimal"

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Available presente apenas em INSUFFICIENT_STOCK: quantidade disponível
	// no momento da recusa, para exibição.
	Available *decimal.Decimal `json:"available,omitempty"`
}
