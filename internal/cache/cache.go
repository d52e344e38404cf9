package cache

import (
	"context"
	"errors"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
)

// ProductCache holds read-through copies of catalog products. Products are
// immutable from the storefront's perspective, so a TTL is the only
// invalidation.
type ProductCache interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Set(ctx context.Context, productID string, product *domain.Product) error
	Delete(ctx context.Context, productID string) error
}

var ErrCacheMiss = errors.New("cache miss")
