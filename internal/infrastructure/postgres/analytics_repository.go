package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas somente leitura para o dashboard e os gráficos.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts conta os produtos cadastrados.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return n, nil
}

// CountLowStock conta os produtos no nível crítico.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE quantity <= min_threshold`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return n, nil
}

// TotalsByCategory agrupa entradas e saídas por categoria no período.
// A categoria vem via LEFT JOIN em products: lançamentos de produtos já
// removidos caem no grupo "(removido)" — o histórico não depende da linha
// do produto.
func (r *AnalyticsRepo) TotalsByCategory(ctx context.Context, from, to time.Time) ([]repository.CategoryTotal, error) {
	const query = `
	SELECT
	    COALESCE(p.category, '(removido)')                                   AS category,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'IN'),  0)           AS total_in,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'OUT'), 0)           AS total_out
	FROM transactions t
	LEFT JOIN products p ON p.id = t.product_id
	WHERE t.date BETWEEN $1 AND $2
	GROUP BY COALESCE(p.category, '(removido)')
	ORDER BY category`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.TotalsByCategory: %w", err)
	}
	defer rows.Close()
	var results []repository.CategoryTotal
	for rows.Next() {
		var row repository.CategoryTotal
		if err := rows.Scan(&row.Category, &row.In, &row.Out); err != nil {
			return nil, fmt.Errorf("analytics.TotalsByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TotalsByProduct agrupa entradas e saídas por produto no período, sobre os
// snapshots de nome — nenhum join, o histórico exibe o nome da época.
func (r *AnalyticsRepo) TotalsByProduct(ctx context.Context, from, to time.Time) ([]repository.ProductTotal, error) {
	const query = `
	SELECT
	    t.product_id,
	    t.product_name,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'IN'),  0) AS total_in,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'OUT'), 0) AS total_out
	FROM transactions t
	WHERE t.date BETWEEN $1 AND $2
	GROUP BY t.product_id, t.product_name
	ORDER BY t.product_name`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.TotalsByProduct: %w", err)
	}
	defer rows.Close()
	var results []repository.ProductTotal
	for rows.Next() {
		var row repository.ProductTotal
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.In, &row.Out); err != nil {
			return nil, fmt.Errorf("analytics.TotalsByProduct scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TotalsByUser agrupa entradas e saídas por funcionário no período, sobre os
// snapshots de nome.
func (r *AnalyticsRepo) TotalsByUser(ctx context.Context, from, to time.Time) ([]repository.UserTotal, error) {
	const query = `
	SELECT
	    t.user_id,
	    t.user_name,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'IN'),  0) AS total_in,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'OUT'), 0) AS total_out
	FROM transactions t
	WHERE t.date BETWEEN $1 AND $2
	GROUP BY t.user_id, t.user_name
	ORDER BY t.user_name`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.TotalsByUser: %w", err)
	}
	defer rows.Close()
	var results []repository.UserTotal
	for rows.Next() {
		var row repository.UserTotal
		if err := rows.Scan(&row.UserID, &row.UserName, &row.In, &row.Out); err != nil {
			return nil, fmt.Errorf("analytics.TotalsByUser scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
