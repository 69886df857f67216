package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// CartEntry is a cart item joined to its current product snapshot.
type CartEntry struct {
	Product  domain.Product
	Quantity int
}

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	ListItems(ctx context.Context, userID string) ([]CartEntry, error)
	RemoveItem(ctx context.Context, userID, productID string) error
}
