package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// BatchItem um item do lote de entradas.
type BatchItem struct {
	ProductID string
	Quantity  decimal.Decimal
}

// BatchInput entrada para registrar várias entradas como uma unidade.
type BatchInput struct {
	UserID string
	Items  []BatchItem
}

// ApplyBatch registra um lote de entradas (somente IN) em duas fases dentro
// de uma única transação:
//
//  1. bloqueia as linhas dos produtos distintos em ordem de ID e cria um
//     lançamento por item válido;
//  2. aplica os deltas agregados, uma escrita por produto distinto.
//
// Itens com produto inexistente ou quantidade não positiva são ignorados
// silenciosamente; o lote só falha com ErrEmptyBatch quando nenhum item
// sobrevive à filtragem. Em falha de storage nada fica visível (rollback).
func (uc *LedgerUseCase) ApplyBatch(ctx context.Context, input BatchInput) ([]*entity.Transaction, error) {
	if input.UserID == "" {
		return nil, &domain.ValidationError{Field: "user_id", Message: "obrigatório"}
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	user, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	var created []*entity.Transaction
	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// IDs distintos dos itens plausíveis, em ordem estável. Bloquear
		// sempre na mesma ordem evita deadlock entre lotes concorrentes.
		seen := make(map[string]bool)
		var ids []string
		for _, item := range input.Items {
			if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
				continue
			}
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
		sort.Strings(ids)

		locked := make(map[string]*entity.Product, len(ids))
		for _, id := range ids {
			p, err := productRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if p != nil {
				locked[id] = p
			}
		}

		// Fase 1: um lançamento por item válido, na ordem de entrada.
		now := time.Now()
		deltas := make(map[string]decimal.Decimal, len(locked))
		for _, item := range input.Items {
			p := locked[item.ProductID]
			if p == nil || !item.Quantity.GreaterThan(decimal.Zero) {
				continue
			}
			t := &entity.Transaction{
				ID:          uuid.New().String(),
				Date:        now,
				ProductID:   p.ID,
				ProductName: p.Name,
				UserID:      user.ID,
				UserName:    user.Name,
				Type:        entity.MovementIN,
				Quantity:    item.Quantity,
			}
			if err := txRepo.Create(t); err != nil {
				return err
			}
			created = append(created, t)
			deltas[p.ID] = deltas[p.ID].Add(item.Quantity)
		}
		if len(created) == 0 {
			return domain.ErrEmptyBatch
		}

		// Fase 2: uma escrita por produto distinto.
		for _, id := range ids {
			delta, ok := deltas[id]
			if !ok {
				continue
			}
			if err := productRepo.UpdateQuantity(id, locked[id].Quantity.Add(delta)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
