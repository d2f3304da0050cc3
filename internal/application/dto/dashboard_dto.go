package dto

import "github.com/shopspring/decimal"

// MovementTotalDTO total de entradas e saídas de um grupo (categoria, produto
// ou funcionário) no período consultado.
type MovementTotalDTO struct {
	ID   string          `json:"id,omitempty"`
	Name string          `json:"name"`
	In   decimal.Decimal `json:"in"`
	Out  decimal.Decimal `json:"out"`
}

// DashboardSummaryDTO resumo para o dashboard e os gráficos.
type DashboardSummaryDTO struct {
	TotalProducts int64              `json:"total_products"`
	LowStockCount int64              `json:"low_stock_count"`
	ByCategory    []MovementTotalDTO `json:"by_category"`
	ByProduct     []MovementTotalDTO `json:"by_product"`
	ByUser        []MovementTotalDTO `json:"by_user"`
}
