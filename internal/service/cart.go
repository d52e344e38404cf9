package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/repository"
)

// ProductGetter resolves product references; satisfied by CatalogService so
// cart views share its cache.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// CartService owns the one-cart-per-account invariant and all line item
// mutations. Every mutation is a read-modify-write of the single cart
// document; concurrent mutations for the same account race at "last full
// cart write wins" granularity.
type CartService struct {
	carts    repository.CartRepository
	products ProductGetter
}

func NewCartService(carts repository.CartRepository, products ProductGetter) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// GetOrCreateCart lazily creates an empty cart on first access. Idempotent.
func (s *CartService) GetOrCreateCart(ctx context.Context, accountID string) (*domain.ResolvedCart, error) {
	cart, err := s.ensureCart(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

// AddItem puts quantity units of a product into the cart. An existing line
// item for the product has its quantity incremented; otherwise a new line
// item is appended.
func (s *CartService) AddItem(ctx context.Context, accountID, productID string, quantity int) (*domain.ResolvedCart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to validate product: %w", err)
	}

	cart, err := s.ensureCart(ctx, accountID)
	if err != nil {
		return nil, err
	}

	coalesced := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			coalesced = true
			break
		}
	}
	if !coalesced {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

// UpdateItemQuantity sets the quantity of an existing line item. Zero is
// not removal; callers wanting removal use RemoveItem explicitly.
func (s *CartService) UpdateItemQuantity(ctx context.Context, accountID, itemID string, quantity int) (*domain.ResolvedCart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	cart, err := s.ensureCart(ctx, accountID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

// RemoveItem deletes a line item entirely.
func (s *CartService) RemoveItem(ctx context.Context, accountID, itemID string) (*domain.ResolvedCart, error) {
	cart, err := s.ensureCart(ctx, accountID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, item := range cart.Items {
		if item.ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

func (s *CartService) ensureCart(ctx context.Context, accountID string) (*domain.Cart, error) {
	cart, err := s.carts.GetByAccount(ctx, accountID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, err
	}

	if err := s.carts.Upsert(ctx, &domain.Cart{
		AccountID: accountID,
		Items:     []domain.CartItem{},
	}); err != nil {
		return nil, err
	}

	// Read back to pick up the stored document (id, timestamps)
	return s.carts.GetByAccount(ctx, accountID)
}

// resolve expands product references to full product data and computes the
// derived aggregates. A line item whose product has vanished is dropped
// from the view rather than failing the whole cart.
func (s *CartService) resolve(ctx context.Context, cart *domain.Cart) (*domain.ResolvedCart, error) {
	resolved := &domain.ResolvedCart{
		ID:        cart.ID,
		AccountID: cart.AccountID,
		Items:     make([]domain.ResolvedItem, 0, len(cart.Items)),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}

	for _, item := range cart.Items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve product %s: %w", item.ProductID, err)
		}

		resolved.Items = append(resolved.Items, domain.ResolvedItem{
			ID:       item.ID,
			Product:  *product,
			Quantity: item.Quantity,
			AddedAt:  item.AddedAt,
		})
		resolved.TotalItemCount += item.Quantity
		resolved.Subtotal += product.Price * float64(item.Quantity)
	}

	return resolved, nil
}
