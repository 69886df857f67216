package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// CartRepository persists (user, product, quantity) triples. Upsert must
// atomically accumulate quantity for an existing (userID, productID) pair.
type CartRepository interface {
	Upsert(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Remove(ctx context.Context, userID, productID string) error
}
