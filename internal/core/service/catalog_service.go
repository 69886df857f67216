package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/metrics"
	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// Catalog implements the salon treatment listings.
type Catalog struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalog(repo ports.ServiceRepository, logger zerolog.Logger) *Catalog {
	return &Catalog{repo: repo, logger: logger}
}

func (c *Catalog) ListServices(ctx context.Context, category string) (*ports.ServiceListing, error) {
	services, err := c.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return &ports.ServiceListing{
		Services:   services,
		Categories: domain.ServiceCategories,
	}, nil
}

func (c *Catalog) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return c.repo.FindByID(ctx, id)
}

func (c *Catalog) CreateService(ctx context.Context, in ports.CreateServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	svc := &domain.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Image:       in.Image,
		Category:    in.Category,
		Features:    orEmpty(in.Features),
		IsPopular:   in.IsPopular,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := c.repo.Insert(ctx, svc)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to create service")
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("service", "create").Inc()
	c.logger.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

func (c *Catalog) UpdateService(ctx context.Context, id string, in ports.UpdateServiceInput) (*domain.Service, error) {
	svc, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Duration != nil {
		svc.Duration = *in.Duration
	}
	if in.Image != nil {
		svc.Image = *in.Image
	}
	if in.Category != nil {
		svc.Category = *in.Category
	}
	if in.Features != nil {
		svc.Features = in.Features
	}
	if in.IsPopular != nil {
		svc.IsPopular = *in.IsPopular
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := c.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("service", "update").Inc()
	return svc, nil
}

func (c *Catalog) DeleteService(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("service", "delete").Inc()
	c.logger.Info().Str("service_id", id).Msg("service deleted")
	return nil
}
