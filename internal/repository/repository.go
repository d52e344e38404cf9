package repository

import (
	"context"
	"errors"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
)

// AccountRepository defines the interface for account data operations
// Consumers define this interface, not the MongoDB implementation
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

type ProductRepository interface {
	List(ctx context.Context, search string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) error
}

// CartRepository persists whole cart documents. Mutations are
// read-modify-write cycles; the unique account_id index makes the
// single-document write the isolation boundary (last full-cart write wins).
type CartRepository interface {
	GetByAccount(ctx context.Context, accountID string) (*domain.Cart, error)
	Upsert(ctx context.Context, cart *domain.Cart) error
}
