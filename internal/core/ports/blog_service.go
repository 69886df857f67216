package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// BlogListing bundles published posts with the facet categories and the
// derived featured list. Featured is recomputed on every call, never cached.
type BlogListing struct {
	Posts      []domain.BlogPost
	Categories []string
	Featured   []domain.BlogPost
}

type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	Author        string
	Category      string
	Tags          []string
	IsPublished   *bool
}

// UpdatePostInput is a shallow-merge patch; see UpdateProductInput.
type UpdatePostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	Author        *string
	Category      *string
	Tags          []string
	IsPublished   *bool
}

type BlogService interface {
	ListPosts(ctx context.Context, filter BlogFilter) (*BlogListing, error)
	// GetPost returns a published post and increments its view counter as
	// an observable side effect.
	GetPost(ctx context.Context, id string) (*domain.BlogPost, error)
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, id string, in UpdatePostInput) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}
