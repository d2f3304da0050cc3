// Package ledger contém o motor de lançamentos: a única autoridade que muta
// Product.Quantity e cria linhas de Transaction.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// LedgerUseCase aplica movimentações de estoque de forma transacional, com
// bloqueio de linha (SELECT FOR UPDATE) e Commit/Rollback.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewLedgerUseCase constrói o caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// MovementInput entrada para aplicar um movimento único (IN ou OUT).
type MovementInput struct {
	ProductID string
	UserID    string
	Type      string
	Quantity  decimal.Decimal
}

// ApplyMovement valida a requisição, verifica o estoque e grava o lançamento
// e a nova quantidade do produto como uma unidade atômica.
//
// A verificação de suficiência do OUT e a escrita da nova quantidade ocorrem
// dentro da mesma transação, com a linha do produto bloqueada do início ao
// fim: duas saídas concorrentes sobre o mesmo produto nunca passam ambas na
// verificação e dirigem a quantidade abaixo de zero.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Transaction, error) {
	if input.ProductID == "" {
		return nil, &domain.ValidationError{Field: "product_id", Message: "obrigatório"}
	}
	if input.UserID == "" {
		return nil, &domain.ValidationError{Field: "user_id", Message: "obrigatório"}
	}
	if !entity.ValidMovementType(input.Type) {
		return nil, &domain.ValidationError{Field: "type", Message: "deve ser IN ou OUT"}
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, &domain.ValidationError{Field: "quantity", Message: "deve ser maior que zero"}
	}

	user, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	// Leitura rápida fora da tx só para falhar cedo; a quantidade usada na
	// decisão é relida sob bloqueio dentro da transação.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var created *entity.Transaction
	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do produto até o Commit/Rollback.
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrProductNotFound
		}

		var newQty decimal.Decimal
		switch input.Type {
		case entity.MovementIN:
			newQty = p.Quantity.Add(input.Quantity)
		case entity.MovementOUT:
			if p.Quantity.LessThan(input.Quantity) {
				return &domain.InsufficientStockError{ProductID: p.ID, Available: p.Quantity}
			}
			newQty = p.Quantity.Sub(input.Quantity)
		}

		now := time.Now()
		t := &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        now,
			ProductID:   p.ID,
			ProductName: p.Name, // snapshot do nome dentro da mesma tx
			UserID:      user.ID,
			UserName:    user.Name,
			Type:        input.Type,
			Quantity:    input.Quantity,
		}
		if err := txRepo.Create(t); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(p.ID, newQty); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
