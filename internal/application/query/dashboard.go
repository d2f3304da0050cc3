package query

import (
	"context"
	"time"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// DashboardUseCase gera o resumo numérico do dashboard e os agregados dos
// gráficos (entradas/saídas por categoria, produto e funcionário).
//
// Fonte de dados: AnalyticsRepository (consultas read-only) e
// ProductRepository (lista de nível crítico). Não toca o caminho de escrita.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo}
}

// GetSummary monta o DashboardSummaryDTO para o período informado.
// from/to nulos cobrem todo o histórico até agora.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, from, to *time.Time) (*dto.DashboardSummaryDTO, error) {
	start := time.Time{}
	end := time.Now()
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	totalProducts, err := uc.analyticsRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analyticsRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.analyticsRepo.TotalsByCategory(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byProduct, err := uc.analyticsRepo.TotalsByProduct(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byUser, err := uc.analyticsRepo.TotalsByUser(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts: totalProducts,
		LowStockCount: lowStock,
		ByCategory:    make([]dto.MovementTotalDTO, 0, len(byCategory)),
		ByProduct:     make([]dto.MovementTotalDTO, 0, len(byProduct)),
		ByUser:        make([]dto.MovementTotalDTO, 0, len(byUser)),
	}
	for _, c := range byCategory {
		summary.ByCategory = append(summary.ByCategory, dto.MovementTotalDTO{Name: c.Category, In: c.In, Out: c.Out})
	}
	for _, p := range byProduct {
		summary.ByProduct = append(summary.ByProduct, dto.MovementTotalDTO{ID: p.ProductID, Name: p.ProductName, In: p.In, Out: p.Out})
	}
	for _, u := range byUser {
		summary.ByUser = append(summary.ByUser, dto.MovementTotalDTO{ID: u.UserID, Name: u.UserName, In: u.In, Out: u.Out})
	}
	return summary, nil
}

// LowStock lista os produtos no nível crítico (quantidade <= limite mínimo).
func (uc *DashboardUseCase) LowStock() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Quantity:     p.Quantity,
			MinThreshold: p.MinThreshold,
			Unit:         p.Unit,
			Category:     p.Category,
			LowStock:     true,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}
	return items, nil
}
