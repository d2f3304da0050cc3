package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementação do porto TransactionRepository sobre
// PostgreSQL (usável com pool ou tx). Lançamentos são append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create insere um lançamento. Nunca existe update ou delete.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, product_id, product_name, user_id, user_name, type, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Date, t.ProductID, t.ProductName, t.UserID, t.UserName, t.Type, t.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List devolve os lançamentos que atendem ao filtro, por data decrescente.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, date, product_id, product_name, user_id, user_name, type, quantity
		FROM transactions`)

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.From != nil {
		conds = append(conds, "date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "date <= "+arg(*filter.To))
	}
	if filter.ProductID != "" {
		conds = append(conds, "product_id = "+arg(filter.ProductID))
	}
	if filter.UserID != "" {
		conds = append(conds, "user_id = "+arg(filter.UserID))
	}
	if filter.Text != "" {
		p := arg("%" + filter.Text + "%")
		conds = append(conds, "(product_name ILIKE "+p+" OR user_name ILIKE "+p+")")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY date DESC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.ProductID, &t.ProductName, &t.UserID, &t.UserName, &t.Type, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
