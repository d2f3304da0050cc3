// Package query contém as projeções somente leitura sobre o histórico de
// lançamentos e os produtos: listagem filtrada, nível crítico e totais para
// os gráficos. Nenhum caminho de escrita.
package query

import (
	"time"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// TransactionListUseCase listagem filtrada do histórico de movimentações.
type TransactionListUseCase struct {
	txRepo repository.TransactionRepository
}

// NewTransactionListUseCase constrói o caso de uso.
func NewTransactionListUseCase(txRepo repository.TransactionRepository) *TransactionListUseCase {
	return &TransactionListUseCase{txRepo: txRepo}
}

// List devolve os lançamentos ordenados por data decrescente.
// Datas aceitam RFC 3339 ou o formato curto YYYY-MM-DD; "to" no formato curto
// cobre o dia inteiro.
func (uc *TransactionListUseCase) List(q dto.TransactionListQuery) ([]dto.TransactionResponse, error) {
	filter := repository.TransactionFilter{
		ProductID: q.ProductID,
		UserID:    q.UserID,
		Text:      q.Text,
	}
	if q.From != "" {
		from, err := parseDate(q.From, false)
		if err != nil {
			return nil, &domain.ValidationError{Field: "from", Message: "data inválida"}
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := parseDate(q.To, true)
		if err != nil {
			return nil, &domain.ValidationError{Field: "to", Message: "data inválida"}
		}
		filter.To = &to
	}

	list, err := uc.txRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TransactionResponse{
			ID:          t.ID,
			Date:        t.Date,
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			UserID:      t.UserID,
			UserName:    t.UserName,
			Type:        t.Type,
			Quantity:    t.Quantity,
		})
	}
	return items, nil
}

func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
