package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item do almoxarifado.
// Quantity é mutado exclusivamente pelo motor de lançamentos (ou por ajuste
// administrativo direto); nunca fica negativo após um movimento confirmado.
type Product struct {
	ID           string
	Name         string
	Quantity     decimal.Decimal
	MinThreshold decimal.Decimal // nível de alerta de reposição
	Unit         string          // unidade de exibição: caixas, litros, fardos...
	Category     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock informa se o produto está no nível crítico (quantidade <= limite mínimo).
func (p *Product) LowStock() bool {
	return p.Quantity.LessThanOrEqual(p.MinThreshold)
}
