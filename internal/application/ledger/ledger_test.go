package ledger_test

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// errStorage simula uma falha do storage para os testes de atomicidade.
var errStorage = errors.New("storage indisponível")

// memStore estado compartilhado das fakes. O TxRunner de teste segura mu
// durante toda a transação, reproduzindo o contrato do bloqueio de linha
// (SELECT FOR UPDATE): o trecho verifica-e-escreve nunca intercala entre
// transações concorrentes. Em erro, o snapshot é restaurado (rollback).
type memStore struct {
	mu           sync.Mutex
	products     map[string]*entity.Product
	users        map[string]*entity.User
	transactions []*entity.Transaction

	quantityWrites []string // IDs de produto, na ordem das escritas em tx
	failCreateAt   int      // falha o N-ésimo Create de lançamento (1-based); 0 = nunca
	createCalls    int
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

func (s *memStore) addProduct(id, name string, qty, threshold decimal.Decimal) {
	s.products[id] = &entity.Product{ID: id, Name: name, Quantity: qty, MinThreshold: threshold, Unit: "unidades", Category: "Geral"}
}

func (s *memStore) addUser(id, name string) {
	s.users[id] = &entity.User{ID: id, Name: name, Role: entity.RoleStaff}
}

type storeSnapshot struct {
	products       map[string]entity.Product
	txCount        int
	quantityWrites int
}

func (s *memStore) snapshot() storeSnapshot {
	products := make(map[string]entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = *p
	}
	return storeSnapshot{products: products, txCount: len(s.transactions), quantityWrites: len(s.quantityWrites)}
}

func (s *memStore) restore(snap storeSnapshot) {
	s.products = make(map[string]*entity.Product, len(snap.products))
	for id, p := range snap.products {
		cp := p
		s.products[id] = &cp
	}
	s.transactions = s.transactions[:snap.txCount]
	s.quantityWrites = s.quantityWrites[:snap.quantityWrites]
}

// memTxRunner implementa ledger.TxRunner sobre o memStore.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(&memTransactionRepo{s: r.s, tx: true}, &memProductRepo{s: r.s, tx: true})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// memProductRepo implementa repository.ProductRepository. tx=true indica que
// o mutex já está com o TxRunner.
type memProductRepo struct {
	s  *memStore
	tx bool
}

func (r *memProductRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	defer r.lock()()
	var list []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memProductRepo) ListLowStock() ([]*entity.Product, error) {
	defer r.lock()()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.LowStock() {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memProductRepo) UpdateQuantity(productID string, quantity decimal.Decimal) error {
	defer r.lock()()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	if r.tx {
		r.s.quantityWrites = append(r.s.quantityWrites, productID)
	}
	return nil
}

func (r *memProductRepo) UpdateThreshold(productID string, minThreshold decimal.Decimal) error {
	defer r.lock()()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.MinThreshold = minThreshold
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.s.products, id)
	return nil
}

// memUserRepo implementa repository.UserRepository (sempre fora de tx).
type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.User
	for _, u := range r.s.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memUserRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// memTransactionRepo implementa repository.TransactionRepository.
type memTransactionRepo struct {
	s  *memStore
	tx bool
}

func (r *memTransactionRepo) Create(t *entity.Transaction) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.createCalls++
	if r.s.failCreateAt > 0 && r.s.createCalls == r.s.failCreateAt {
		return errStorage
	}
	cp := *t
	r.s.transactions = append(r.s.transactions, &cp)
	return nil
}

func (r *memTransactionRepo) List(_ repository.TransactionFilter) ([]*entity.Transaction, error) {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	out := make([]*entity.Transaction, len(r.s.transactions))
	copy(out, r.s.transactions)
	return out, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
