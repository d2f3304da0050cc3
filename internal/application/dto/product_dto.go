package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Quantity e MinThreshold ausentes valem zero.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
}

// SetQuantityRequest body para PATCH /api/products/:id (ajuste administrativo).
type SetQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// SetThresholdRequest body para PATCH /api/products/:id/threshold.
type SetThresholdRequest struct {
	MinThreshold decimal.Decimal `json:"min_threshold"`
}

// ProductResponse representação de Product para a API.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category"`
	LowStock     bool            `json:"low_stock"` // quantidade <= limite mínimo
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
