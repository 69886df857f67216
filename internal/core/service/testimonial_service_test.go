package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

type stubTestimonialRepo struct {
	testimonials map[string]*domain.Testimonial
	nextID       int
}

func newStubTestimonialRepo() *stubTestimonialRepo {
	return &stubTestimonialRepo{testimonials: make(map[string]*domain.Testimonial)}
}

func cloneTestimonial(t *domain.Testimonial) *domain.Testimonial {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTestimonialRepo) List(_ context.Context, filter ports.TestimonialFilter) ([]domain.Testimonial, error) {
	out := []domain.Testimonial{}
	for _, t := range r.testimonials {
		if filter.Approved != nil && t.IsApproved != *filter.Approved {
			continue
		}
		if filter.Featured != nil && t.IsFeatured != *filter.Featured {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTestimonialRepo) FindByID(_ context.Context, id string) (*domain.Testimonial, error) {
	if t, ok := r.testimonials[id]; ok {
		return cloneTestimonial(t), nil
	}
	return nil, domain.ErrTestimonialNotFound
}

func (r *stubTestimonialRepo) Insert(_ context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	copy := cloneTestimonial(t)
	r.nextID++
	copy.ID = fmt.Sprintf("tst_%d", r.nextID)
	r.testimonials[copy.ID] = cloneTestimonial(copy)
	return copy, nil
}

func (r *stubTestimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	if _, ok := r.testimonials[t.ID]; !ok {
		return domain.ErrTestimonialNotFound
	}
	r.testimonials[t.ID] = cloneTestimonial(t)
	return nil
}

func (r *stubTestimonialRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.testimonials[id]; !ok {
		return domain.ErrTestimonialNotFound
	}
	delete(r.testimonials, id)
	return nil
}

func (r *stubTestimonialRepo) Approve(_ context.Context, id string) (*domain.Testimonial, error) {
	t, ok := r.testimonials[id]
	if !ok {
		return nil, domain.ErrTestimonialNotFound
	}
	t.IsApproved = true
	t.UpdatedAt = time.Now().UTC()
	return cloneTestimonial(t), nil
}

func testimonialInput() ports.CreateTestimonialInput {
	return ports.CreateTestimonialInput{
		CustomerName: "Maria",
		Rating:       5,
		Review:       "Lovely work on my gel nails.",
		ServiceUsed:  "Gel Manicure",
	}
}

func TestTestimonialService_Create_StartsUnapproved(t *testing.T) {
	repo := newStubTestimonialRepo()
	svc := NewTestimonialService(repo, zerolog.Nop())

	created, err := svc.CreateTestimonial(context.Background(), testimonialInput())
	if err != nil {
		t.Fatalf("CreateTestimonial returned error: %v", err)
	}
	if created.IsApproved || created.IsFeatured {
		t.Fatalf("expected new testimonial to start unapproved and unfeatured: %+v", created)
	}
}

func TestTestimonialService_Approve(t *testing.T) {
	repo := newStubTestimonialRepo()
	svc := NewTestimonialService(repo, zerolog.Nop())

	created, _ := svc.CreateTestimonial(context.Background(), testimonialInput())

	approved, err := svc.ApproveTestimonial(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ApproveTestimonial returned error: %v", err)
	}
	if !approved.IsApproved {
		t.Fatalf("expected testimonial to be approved")
	}

	// Approving twice is a no-op, not an error.
	again, err := svc.ApproveTestimonial(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second ApproveTestimonial returned error: %v", err)
	}
	if !again.IsApproved {
		t.Fatalf("expected testimonial to stay approved")
	}
}

func TestTestimonialService_Approve_NotFound(t *testing.T) {
	repo := newStubTestimonialRepo()
	svc := NewTestimonialService(repo, zerolog.Nop())

	if _, err := svc.ApproveTestimonial(context.Background(), "missing"); err != domain.ErrTestimonialNotFound {
		t.Fatalf("expected ErrTestimonialNotFound, got %v", err)
	}
}

// The featured set is derived from the full collection, not from the
// filtered main list.
func TestTestimonialService_List_FeaturedFromFullCollection(t *testing.T) {
	repo := newStubTestimonialRepo()
	svc := NewTestimonialService(repo, zerolog.Nop())

	plain, _ := svc.CreateTestimonial(context.Background(), testimonialInput())
	_, _ = svc.ApproveTestimonial(context.Background(), plain.ID)

	star, _ := svc.CreateTestimonial(context.Background(), testimonialInput())
	_, _ = svc.ApproveTestimonial(context.Background(), star.ID)
	yes := true
	if _, err := svc.UpdateTestimonial(context.Background(), star.ID, ports.UpdateTestimonialInput{IsFeatured: &yes}); err != nil {
		t.Fatalf("UpdateTestimonial returned error: %v", err)
	}

	no := false
	listing, err := svc.ListTestimonials(context.Background(), ports.TestimonialFilter{Featured: &no})
	if err != nil {
		t.Fatalf("ListTestimonials returned error: %v", err)
	}
	if len(listing.Testimonials) != 1 || listing.Testimonials[0].ID != plain.ID {
		t.Fatalf("unexpected filtered list: %+v", listing.Testimonials)
	}
	if len(listing.Featured) != 1 || listing.Featured[0].ID != star.ID {
		t.Fatalf("expected featured set independent of filters: %+v", listing.Featured)
	}
}

func TestTestimonialService_Update_PreservesModeration(t *testing.T) {
	repo := newStubTestimonialRepo()
	svc := NewTestimonialService(repo, zerolog.Nop())

	created, _ := svc.CreateTestimonial(context.Background(), testimonialInput())
	_, _ = svc.ApproveTestimonial(context.Background(), created.ID)

	review := "Even better the second visit."
	updated, err := svc.UpdateTestimonial(context.Background(), created.ID, ports.UpdateTestimonialInput{Review: &review})
	if err != nil {
		t.Fatalf("UpdateTestimonial returned error: %v", err)
	}
	if !updated.IsApproved {
		t.Fatalf("expected approval flag to survive a content update")
	}
	if updated.Review != review {
		t.Fatalf("review not updated: %s", updated.Review)
	}
}
