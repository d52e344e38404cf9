package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/cache"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/repository"
)

type mockAccountRepo struct {
	m       sync.Mutex
	byEmail map[string]*domain.Account
	nextID  int
	err     error
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.byEmail[account.Email]; ok {
		return nil, repository.ErrDuplicateEmail
	}
	m.nextID++
	stored := *account
	stored.ID = fmt.Sprintf("acct-%d", m.nextID)
	stored.CreatedAt = time.Now()
	m.byEmail[stored.Email] = &stored
	return &stored, nil
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	account, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, account := range m.byEmail {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, repository.ErrAccountNotFound
}

type mockProductRepo struct {
	m        sync.Mutex
	products map[string]*domain.Product
	err      error
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	byID := make(map[string]*domain.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	return &mockProductRepo{products: byID}
}

func (m *mockProductRepo) List(_ context.Context, _ string) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockProductRepo) Upsert(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.products[product.ID] = product
	return nil
}

type mockProductCache struct {
	m        sync.RWMutex
	products map[string]*domain.Product
	err      error
}

func newMockProductCache() *mockProductCache {
	return &mockProductCache{products: make(map[string]*domain.Product)}
}

func (m *mockProductCache) Get(_ context.Context, id string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (m *mockProductCache) Set(_ context.Context, id string, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products[id] = product
	return m.err
}

func (m *mockProductCache) Delete(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.products, id)
	return m.err
}

func (m *mockProductCache) getProduct(id string) *domain.Product {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.products[id]
}

type mockCartRepo struct {
	m      sync.Mutex
	carts  map[string]*domain.Cart
	nextID int
	err    error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*domain.Cart)}
}

func (m *mockCartRepo) GetByAccount(_ context.Context, accountID string) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[accountID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (m *mockCartRepo) Upsert(_ context.Context, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	now := time.Now()
	stored, ok := m.carts[cart.AccountID]
	if !ok {
		m.nextID++
		stored = &domain.Cart{
			ID:        fmt.Sprintf("cart-%d", m.nextID),
			AccountID: cart.AccountID,
			CreatedAt: now,
		}
		m.carts[cart.AccountID] = stored
	}
	stored.Items = append([]domain.CartItem(nil), cart.Items...)
	stored.UpdatedAt = now
	return nil
}

// mockProductGetter stands in for the catalog when testing the cart service.
type mockProductGetter struct {
	products map[string]*domain.Product
	err      error
}

func (m *mockProductGetter) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}
