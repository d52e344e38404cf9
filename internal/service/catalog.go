package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/cache"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/repository"
)

// CatalogService is the read-only product surface. Single-product lookups
// read through the cache; listings always hit the store because the search
// term varies.
type CatalogService struct {
	products repository.ProductRepository
	cache    cache.ProductCache
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCatalogService(products repository.ProductRepository, cache cache.ProductCache) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
	}
}

// ListProducts returns the catalog, filtered by a case-insensitive
// substring match on name when search is non-empty.
func (s *CatalogService) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	products, err := s.products.List(ctx, search)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {

		product, err := s.cache.Get(ctx, id)
		if err == nil {
			return product, nil // product is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		product, errGet := s.products.Get(ctx, id)
		if errGet != nil {
			if errors.Is(errGet, repository.ErrProductNotFound) {
				return nil, ErrNotFound
			}
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), id, product)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return product, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}
