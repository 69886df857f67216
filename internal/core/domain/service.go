package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceCategories is the facet list returned alongside service listings.
var ServiceCategories = []string{"Manicure", "Pedicure", "Extensions", "Nail Art", "Repair"}

// Service is a salon treatment offered for booking.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Duration    int       `json:"duration" bson:"duration"` // minutes
	Image       string    `json:"image" bson:"image"`
	Category    string    `json:"category" bson:"category"`
	Features    []string  `json:"features" bson:"features"`
	IsPopular   bool      `json:"is_popular" bson:"is_popular"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
