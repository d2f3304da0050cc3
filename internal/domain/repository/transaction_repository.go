package repository

import (
	"time"

	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
)

// TransactionFilter filtros opcionais de listagem. Campos zero são ignorados.
type TransactionFilter struct {
	From      *time.Time
	To        *time.Time
	ProductID string
	UserID    string
	Text      string // busca livre sobre os snapshots product_name/user_name
}

// TransactionRepository define o porto de persistência para Transaction.
// Lançamentos são imutáveis: só existem Create e List, nunca update ou delete.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	// List devolve os lançamentos que atendem ao filtro, ordenados por data
	// decrescente.
	List(filter TransactionFilter) ([]*entity.Transaction, error)
}
