package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// ProductFilter narrows a product listing. Empty fields (or the literal
// value "all") mean no filtering on that dimension. Search is a
// case-insensitive substring match over name, description, and tags.
type ProductFilter struct {
	Category string
	Brand    string
	Search   string
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
