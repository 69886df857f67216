package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// ProductListing bundles the filtered items with the static facet lists the
// storefront renders as filter controls.
type ProductListing struct {
	Products   []domain.Product
	Categories []string
	Brands     []string
}

type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	DiscountPrice float64
	Images        []string
	Category      string
	Brand         string
	StockQuantity int
	Tags          []string
	IsNew         bool
	IsFeatured    bool
}

// UpdateProductInput is a shallow-merge patch: nil fields keep their prior
// value; non-nil slice fields replace the stored slice wholesale.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	DiscountPrice *float64
	Images        []string
	Category      *string
	Brand         *string
	InStock       *bool
	StockQuantity *int
	Tags          []string
	IsNew         *bool
	IsFeatured    *bool
}

type ProductService interface {
	ListProducts(ctx context.Context, filter ProductFilter) (*ProductListing, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
