package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// TestimonialFilter narrows a testimonial listing. Nil pointers mean the
// dimension is not filtered at all, distinct from filtering on false.
type TestimonialFilter struct {
	Approved *bool
	Featured *bool
}

type TestimonialRepository interface {
	// List returns testimonials matching the filter, newest first.
	List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error)
	FindByID(ctx context.Context, id string) (*domain.Testimonial, error)
	Insert(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	// Approve atomically sets is_approved and returns the updated document.
	Approve(ctx context.Context, id string) (*domain.Testimonial, error)
}
