package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// BlogFilter narrows a post listing. Listings only ever return published
// posts; Search matches title, excerpt, and content case-insensitively.
// Limit <= 0 means no limit.
type BlogFilter struct {
	Category string
	Search   string
	Limit    int
}

type BlogRepository interface {
	// List returns published posts matching the filter, newest first.
	List(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, error)
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	// IncrementViews atomically adds one view to a published post and
	// returns the updated document.
	IncrementViews(ctx context.Context, id string) (*domain.BlogPost, error)
	Insert(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, p *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}
