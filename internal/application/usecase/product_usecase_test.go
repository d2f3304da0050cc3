package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/application/usecase"
	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
)

// fakeProductRepo implementação em memória de repository.ProductRepository.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.LowStock() {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) UpdateThreshold(id string, minThreshold decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.MinThreshold = minThreshold
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductCreate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:         "  Sabão Líquido  ",
		Quantity:     d("12"),
		MinThreshold: d("4"),
		Unit:         "litros",
		Category:     "Limpeza",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sabão Líquido", created.Name, "nome deve vir sem espaços das pontas")
	assert.True(t, created.Quantity.Equal(d("12")))
	assert.False(t, created.LowStock)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestProductCreate_Validacao(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	cases := []struct {
		name  string
		in    dto.CreateProductRequest
		field string
	}{
		{"nome obrigatório", dto.CreateProductRequest{Name: "   ", Unit: "un", Category: "Geral"}, "name"},
		{"unidade obrigatória", dto.CreateProductRequest{Name: "Copo", Category: "Geral"}, "unit"},
		{"categoria obrigatória", dto.CreateProductRequest{Name: "Copo", Unit: "un"}, "category"},
		{"quantidade negativa", dto.CreateProductRequest{Name: "Copo", Unit: "un", Category: "Geral", Quantity: d("-1")}, "quantity"},
		{"alerta negativo", dto.CreateProductRequest{Name: "Copo", Unit: "un", Category: "Geral", MinThreshold: d("-1")}, "min_threshold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			created, err := uc.Create(tc.in)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	got, err := uc.GetByID("nao-existe")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductSetQuantity(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(dto.CreateProductRequest{Name: "Copo", Unit: "un", Category: "Geral", Quantity: d("5")})
	require.NoError(t, err)

	updated, err := uc.SetQuantity(created.ID, d("0"))
	require.NoError(t, err)
	assert.True(t, updated.Quantity.IsZero())

	_, err = uc.SetQuantity(created.ID, d("-3"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetQuantity("nao-existe", d("1"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductSetThreshold_MarcaEstoqueBaixo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(dto.CreateProductRequest{Name: "Copo", Unit: "un", Category: "Geral", Quantity: d("5")})
	require.NoError(t, err)
	assert.False(t, created.LowStock)

	// Igual ao limiar também conta como estoque baixo.
	updated, err := uc.SetThreshold(created.ID, d("5"))
	require.NoError(t, err)
	assert.True(t, updated.LowStock)
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(dto.CreateProductRequest{Name: "Copo", Unit: "un", Category: "Geral"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
