package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almoxapp/almoxarifado-api/internal/application/ledger"
	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
)

func TestApplyBatch_CriaUmLancamentoPorItem(t *testing.T) {
	uc, store := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u1",
		Items: []ledger.BatchItem{
			{ProductID: "p1", Quantity: dec("2")},
			{ProductID: "p2", Quantity: dec("10")},
		},
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, tx := range created {
		assert.Equal(t, entity.MovementIN, tx.Type)
		assert.Equal(t, "Maria", tx.UserName)
	}
	assert.True(t, store.products["p1"].Quantity.Equal(dec("10")))
	assert.True(t, store.products["p2"].Quantity.Equal(dec("30")))
	assert.Len(t, store.transactions, 2)
}

func TestApplyBatch_AgregaEscritasPorProduto(t *testing.T) {
	uc, store := newLedgerFixture()

	// Dois itens do mesmo produto: dois lançamentos, mas uma única escrita de
	// quantidade com o delta somado.
	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u1",
		Items: []ledger.BatchItem{
			{ProductID: "p1", Quantity: dec("3")},
			{ProductID: "p1", Quantity: dec("5")},
		},
	})

	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.True(t, store.products["p1"].Quantity.Equal(dec("16")))
	assert.Equal(t, []string{"p1"}, store.quantityWrites)
	assert.Len(t, store.transactions, 2)
}

func TestApplyBatch_PreservaOrdemDeEntrada(t *testing.T) {
	uc, _ := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u1",
		Items: []ledger.BatchItem{
			{ProductID: "p2", Quantity: dec("1")},
			{ProductID: "p1", Quantity: dec("2")},
			{ProductID: "p2", Quantity: dec("3")},
		},
	})

	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "p2", created[0].ProductID)
	assert.Equal(t, "p1", created[1].ProductID)
	assert.Equal(t, "p2", created[2].ProductID)
	assert.True(t, created[2].Quantity.Equal(dec("3")))
}

func TestApplyBatch_IgnoraItensInvalidos(t *testing.T) {
	uc, store := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u1",
		Items: []ledger.BatchItem{
			{ProductID: "p1", Quantity: dec("2")},
			{ProductID: "p-fantasma", Quantity: dec("4")}, // produto inexistente
			{ProductID: "p2", Quantity: dec("0")},         // quantidade não positiva
			{ProductID: "", Quantity: dec("1")},           // sem produto
			{ProductID: "p2", Quantity: dec("6")},
		},
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "p1", created[0].ProductID)
	assert.Equal(t, "p2", created[1].ProductID)
	assert.True(t, store.products["p1"].Quantity.Equal(dec("10")))
	assert.True(t, store.products["p2"].Quantity.Equal(dec("26")))
	assert.Len(t, store.transactions, 2)
}

func TestApplyBatch_TodosInvalidos(t *testing.T) {
	uc, store := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u1",
		Items: []ledger.BatchItem{
			{ProductID: "p-fantasma", Quantity: dec("4")},
			{ProductID: "p1", Quantity: dec("-1")},
		},
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	assert.Empty(t, store.transactions)
	assert.True(t, store.products["p1"].Quantity.Equal(dec("8")))
}

func TestApplyBatch_SemItens(t *testing.T) {
	uc, _ := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{UserID: "u1"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestApplyBatch_FuncionarioObrigatorio(t *testing.T) {
	uc, _ := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		Items: []ledger.BatchItem{{ProductID: "p1", Quantity: dec("1")}},
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyBatch_FuncionarioInexistente(t *testing.T) {
	uc, store := newLedgerFixture()

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u-fantasma",
		Items:  []ledger.BatchItem{{ProductID: "p1", Quantity: dec("1")}},
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, store.transactions)
}

func TestApplyBatch_FalhaNoMeioDesfazTudo(t *testing.T) {
	uc, store := newLedgerFixture()
	store.failCreateAt = 2 // o segundo lançamento do lote falha

	created, err := uc.ApplyBatch(context.Background(), ledger.BatchInput{
		UserID: "u1",
		Items: []ledger.BatchItem{
			{ProductID: "p1", Quantity: dec("2")},
			{ProductID: "p2", Quantity: dec("4")},
		},
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, errStorage)
	// Nem o primeiro lançamento nem quantidade alguma podem ter sobrevivido.
	assert.Empty(t, store.transactions)
	assert.True(t, store.products["p1"].Quantity.Equal(dec("8")))
	assert.True(t, store.products["p2"].Quantity.Equal(dec("20")))
}
