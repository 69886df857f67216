package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// TestimonialListing bundles the filtered testimonials with the derived
// featured set (approved && featured, computed over the full collection).
type TestimonialListing struct {
	Testimonials []domain.Testimonial
	Featured     []domain.Testimonial
}

type CreateTestimonialInput struct {
	CustomerName  string
	CustomerImage string
	Rating        int
	Review        string
	ServiceUsed   string
	BeforeImage   string
	AfterImage    string
}

// UpdateTestimonialInput is a shallow-merge patch; see UpdateProductInput.
type UpdateTestimonialInput struct {
	CustomerName  *string
	CustomerImage *string
	Rating        *int
	Review        *string
	ServiceUsed   *string
	BeforeImage   *string
	AfterImage    *string
	IsFeatured    *bool
}

type TestimonialService interface {
	ListTestimonials(ctx context.Context, filter TestimonialFilter) (*TestimonialListing, error)
	GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in CreateTestimonialInput) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, in UpdateTestimonialInput) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
	ApproveTestimonial(ctx context.Context, id string) (*domain.Testimonial, error)
}
