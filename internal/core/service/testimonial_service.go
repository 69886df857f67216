package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/metrics"
	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// TestimonialService implements customer review moderation and listings.
type TestimonialService struct {
	repo   ports.TestimonialRepository
	logger zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, logger zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, logger: logger}
}

// ListTestimonials applies the optional approved/featured filters to the
// main list. The featured set is always derived from the full collection
// (approved && featured), independent of the request filters.
func (s *TestimonialService) ListTestimonials(ctx context.Context, filter ports.TestimonialFilter) (*ports.TestimonialListing, error) {
	testimonials, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	yes := true
	featured, err := s.repo.List(ctx, ports.TestimonialFilter{Approved: &yes, Featured: &yes})
	if err != nil {
		return nil, err
	}

	return &ports.TestimonialListing{Testimonials: testimonials, Featured: featured}, nil
}

func (s *TestimonialService) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateTestimonial stores a new review. Reviews always start unapproved and
// unfeatured regardless of the submitted payload.
func (s *TestimonialService) CreateTestimonial(ctx context.Context, in ports.CreateTestimonialInput) (*domain.Testimonial, error) {
	now := time.Now().UTC()
	t := &domain.Testimonial{
		CustomerName:  in.CustomerName,
		CustomerImage: in.CustomerImage,
		Rating:        in.Rating,
		Review:        in.Review,
		ServiceUsed:   in.ServiceUsed,
		BeforeImage:   in.BeforeImage,
		AfterImage:    in.AfterImage,
		IsApproved:    false,
		IsFeatured:    false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, t)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create testimonial")
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("testimonial", "create").Inc()
	return created, nil
}

func (s *TestimonialService) UpdateTestimonial(ctx context.Context, id string, in ports.UpdateTestimonialInput) (*domain.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CustomerName != nil {
		t.CustomerName = *in.CustomerName
	}
	if in.CustomerImage != nil {
		t.CustomerImage = *in.CustomerImage
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	if in.Review != nil {
		t.Review = *in.Review
	}
	if in.ServiceUsed != nil {
		t.ServiceUsed = *in.ServiceUsed
	}
	if in.BeforeImage != nil {
		t.BeforeImage = *in.BeforeImage
	}
	if in.AfterImage != nil {
		t.AfterImage = *in.AfterImage
	}
	if in.IsFeatured != nil {
		t.IsFeatured = *in.IsFeatured
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("testimonial", "update").Inc()
	return t, nil
}

func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("testimonial", "delete").Inc()
	return nil
}

// ApproveTestimonial performs the one-way unapproved -> approved transition.
// Approving an already-approved testimonial is a harmless no-op that
// re-stamps updated_at.
func (s *TestimonialService) ApproveTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	t, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.TestimonialApprovalsTotal.Inc()
	s.logger.Info().Str("testimonial_id", id).Msg("testimonial approved")
	return t, nil
}
