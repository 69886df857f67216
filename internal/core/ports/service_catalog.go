package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// ServiceListing bundles the filtered treatments with the facet categories.
type ServiceListing struct {
	Services   []domain.Service
	Categories []string
}

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
	Image       string
	Category    string
	Features    []string
	IsPopular   bool
}

// UpdateServiceInput is a shallow-merge patch; see UpdateProductInput.
type UpdateServiceInput struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	Image       *string
	Category    *string
	Features    []string
	IsPopular   *bool
}

// ServiceCatalog manages the salon treatment listings.
type ServiceCatalog interface {
	ListServices(ctx context.Context, category string) (*ServiceListing, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, in UpdateServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}
