package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/metrics"
	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// CartService maps users to (product, quantity) pairs. It validates product
// references against the product repository on add and hydrates them on read.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// AddItem adds quantity of a product to the user's cart. Adding a product
// already in the cart accumulates onto the existing row rather than creating
// a second one.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	item, err := s.carts.Upsert(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	s.logger.Info().Str("user_id", userID).Str("product_id", productID).Int("quantity", item.Quantity).Msg("cart item added")
	return item, nil
}

// ListItems joins each cart row to its current product snapshot. Rows whose
// product no longer exists are silently skipped.
func (s *CartService) ListItems(ctx context.Context, userID string) ([]ports.CartEntry, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.CartEntry, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, ports.CartEntry{Product: *product, Quantity: item.Quantity})
	}
	return entries, nil
}

// RemoveItem deletes exactly the (userID, productID) row, leaving the rest
// of the user's cart untouched.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	if err := s.carts.Remove(ctx, userID, productID); err != nil {
		return err
	}
	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return nil
}
