package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// ProductCategories and ProductBrands are the facet lists returned alongside
// every product listing to drive the storefront filter UI.
var ProductCategories = []string{"Kits", "Equipment", "Gels", "Tools", "Care"}
var ProductBrands = []string{"Selva Pro", "NailTech", "ProTools", "NailCare Plus"}

// Product is a retail item in the shop catalog.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	DiscountPrice float64   `json:"discount_price,omitempty" bson:"discount_price,omitempty"`
	Images        []string  `json:"images" bson:"images"`
	Category      string    `json:"category" bson:"category"`
	Brand         string    `json:"brand" bson:"brand"`
	InStock       bool      `json:"in_stock" bson:"in_stock"`
	StockQuantity int       `json:"stock_quantity" bson:"stock_quantity"`
	Rating        float64   `json:"rating" bson:"rating"`
	Reviews       int       `json:"reviews" bson:"reviews"`
	Tags          []string  `json:"tags" bson:"tags"`
	IsNew         bool      `json:"is_new" bson:"is_new"`
	IsFeatured    bool      `json:"is_featured" bson:"is_featured"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
