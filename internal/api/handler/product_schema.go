package handler

import "github.com/selvanails/selva-api/internal/core/domain"

type createProductRequest struct {
	Name          string   `json:"name"           validate:"required"`
	Description   string   `json:"description"    validate:"required"`
	Price         float64  `json:"price"          validate:"required,gt=0"`
	DiscountPrice float64  `json:"discount_price" validate:"omitempty,gt=0"`
	Images        []string `json:"images"`
	Category      string   `json:"category"       validate:"required"`
	Brand         string   `json:"brand"          validate:"required"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
	Tags          []string `json:"tags"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
}

// updateProductRequest is a partial patch: omitted fields keep their stored
// value, supplied array fields replace the stored array wholesale.
type updateProductRequest struct {
	Name          *string  `json:"name"           validate:"omitempty,min=1"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"          validate:"omitempty,gt=0"`
	DiscountPrice *float64 `json:"discount_price" validate:"omitempty,gte=0"`
	Images        []string `json:"images"`
	Category      *string  `json:"category"`
	Brand         *string  `json:"brand"`
	InStock       *bool    `json:"in_stock"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	Tags          []string `json:"tags"`
	IsNew         *bool    `json:"is_new"`
	IsFeatured    *bool    `json:"is_featured"`
}

type listProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Categories []string         `json:"categories"`
	Brands     []string         `json:"brands"`
}
