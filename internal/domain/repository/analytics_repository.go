package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal resultado cru da agregação por categoria.
// A DB o produz; o use case converte em DTO.
type CategoryTotal struct {
	Category string
	In       decimal.Decimal // soma das entradas no período
	Out      decimal.Decimal // soma das saídas no período
}

// ProductTotal resultado cru da agregação por produto (sobre os snapshots).
type ProductTotal struct {
	ProductID   string
	ProductName string
	In          decimal.Decimal
	Out         decimal.Decimal
}

// UserTotal resultado cru da agregação por funcionário (sobre os snapshots).
type UserTotal struct {
	UserID   string
	UserName string
	In       decimal.Decimal
	Out      decimal.Decimal
}

// AnalyticsRepository consultas somente leitura para o dashboard e gráficos.
// Nenhuma escrita; reflete o último estado confirmado do livro.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	TotalsByCategory(ctx context.Context, from, to time.Time) ([]CategoryTotal, error)
	TotalsByProduct(ctx context.Context, from, to time.Time) ([]ProductTotal, error)
	TotalsByUser(ctx context.Context, from, to time.Time) ([]UserTotal, error)
}
