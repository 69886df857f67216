package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/metrics"
	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// BlogService implements the content-site post operations.
type BlogService struct {
	repo   ports.BlogRepository
	logger zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

// ListPosts returns published posts matching the filter plus the derived
// featured list. Featured is recomputed from the result set on every call:
// posts whose views exceed the threshold, capped to the first three.
func (s *BlogService) ListPosts(ctx context.Context, filter ports.BlogFilter) (*ports.BlogListing, error) {
	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	featured := make([]domain.BlogPost, 0, domain.FeaturedPostsCap)
	for _, p := range posts {
		if p.Views > domain.FeaturedViewsThreshold {
			featured = append(featured, p)
			if len(featured) == domain.FeaturedPostsCap {
				break
			}
		}
	}

	return &ports.BlogListing{
		Posts:      posts,
		Categories: domain.BlogCategories,
		Featured:   featured,
	}, nil
}

// GetPost returns a published post and bumps its view counter. The increment
// is atomic in the repository, so N concurrent reads add exactly N views.
func (s *BlogService) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.PostViewsTotal.Inc()
	return post, nil
}

func (s *BlogService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.BlogPost, error) {
	now := time.Now().UTC()
	published := false
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	post := &domain.BlogPost{
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		FeaturedImage: in.FeaturedImage,
		Author:        in.Author,
		Category:      in.Category,
		Tags:          orEmpty(in.Tags),
		PublishedAt:   now,
		UpdatedAt:     now,
		IsPublished:   published,
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("blog", "create").Inc()
	s.logger.Info().Str("post_id", created.ID).Str("title", created.Title).Msg("post created")
	return created, nil
}

func (s *BlogService) UpdatePost(ctx context.Context, id string, in ports.UpdatePostInput) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.FeaturedImage != nil {
		post.FeaturedImage = *in.FeaturedImage
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("blog", "update").Inc()
	return post, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog", "delete").Inc()
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}
