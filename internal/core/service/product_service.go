package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/metrics"
	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// ProductService implements the shop catalog operations.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context, filter ports.ProductFilter) (*ports.ProductListing, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ProductListing{
		Products:   products,
		Categories: domain.ProductCategories,
		Brands:     domain.ProductBrands,
	}, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		Images:        orEmpty(in.Images),
		Category:      in.Category,
		Brand:         in.Brand,
		InStock:       in.StockQuantity > 0,
		StockQuantity: in.StockQuantity,
		Tags:          orEmpty(in.Tags),
		IsNew:         in.IsNew,
		IsFeatured:    in.IsFeatured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "create").Inc()
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// UpdateProduct shallow-merges the patch into the stored product: nil patch
// fields keep their prior value, non-nil slices replace wholesale.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.DiscountPrice != nil {
		product.DiscountPrice = *in.DiscountPrice
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.IsNew != nil {
		product.IsNew = *in.IsNew
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "update").Inc()
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// No cascade: cart rows referencing this product become dangling and
	// are filtered out on cart reads.
	metrics.CatalogWritesTotal.WithLabelValues("product", "delete").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// orEmpty normalises a nil slice to an empty one so JSON renders [] not null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
