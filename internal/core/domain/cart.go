package domain

import (
	"errors"
	"time"
)

var ErrCartItemNotFound = errors.New("item not found in cart")

// CartItem maps a user to a product reference and a quantity. Uniqueness is
// per (user_id, product_id): adding the same product again accumulates the
// quantity instead of creating a second row.
//
// Only the product id is held, never a copy of the product, so price and
// description changes propagate to cart views. A product deleted after being
// added leaves a dangling reference; cart reads must tolerate and skip it.
type CartItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
