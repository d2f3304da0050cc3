package repository

import (
	"github.com/shopspring/decimal"

	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
// GetByID devolve (nil, nil) quando o produto não existe — "não encontrado"
// é distinto de "encontrado com quantidade zero".
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate lê o produto bloqueando a linha (SELECT FOR UPDATE) até o
	// fim da transação corrente. Só faz sentido quando o repositório está
	// atado a uma tx.
	GetForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	UpdateQuantity(productID string, quantity decimal.Decimal) error
	UpdateThreshold(productID string, minThreshold decimal.Decimal) error
	Delete(id string) error
}
