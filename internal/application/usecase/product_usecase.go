package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// ProductUseCase casos de uso administrativos para Product.
// Quantity é mutada pelo motor de lançamentos; aqui só existe o ajuste
// administrativo direto (SetQuantity).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um novo produto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	category := strings.TrimSpace(in.Category)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "obrigatório"}
	}
	if unit == "" {
		return nil, &domain.ValidationError{Field: "unit", Message: "obrigatório"}
	}
	if category == "" {
		return nil, &domain.ValidationError{Field: "category", Message: "obrigatório"}
	}
	if in.Quantity.IsNegative() {
		return nil, &domain.ValidationError{Field: "quantity", Message: "não pode ser negativa"}
	}
	if in.MinThreshold.IsNegative() {
		return nil, &domain.ValidationError{Field: "min_threshold", Message: "não pode ser negativo"}
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		Unit:         unit,
		Category:     category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID. Devolve (nil, nil) se não existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos os produtos ordenados por nome.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// SetQuantity sobrescreve a quantidade atual (ajuste administrativo, fora do
// livro de movimentações).
func (uc *ProductUseCase) SetQuantity(id string, quantity decimal.Decimal) (*dto.ProductResponse, error) {
	if quantity.IsNegative() {
		return nil, &domain.ValidationError{Field: "quantity", Message: "não pode ser negativa"}
	}
	if err := uc.repo.UpdateQuantity(id, quantity); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// SetThreshold atualiza o nível de alerta de reposição.
func (uc *ProductUseCase) SetThreshold(id string, minThreshold decimal.Decimal) (*dto.ProductResponse, error) {
	if minThreshold.IsNegative() {
		return nil, &domain.ValidationError{Field: "min_threshold", Message: "não pode ser negativo"}
	}
	if err := uc.repo.UpdateThreshold(id, minThreshold); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete remove um produto. O histórico de lançamentos sobrevive: os
// snapshots de nome nas transações não dependem da linha do produto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		MinThreshold: p.MinThreshold,
		Unit:         p.Unit,
		Category:     p.Category,
		LowStock:     p.LowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
