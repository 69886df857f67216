package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// BlogCategories is the facet list returned alongside blog listings.
var BlogCategories = []string{"Nail Care", "Trends", "Tips & Tricks", "DIY", "Product Reviews"}

// featuredViewsThreshold is the view count a post must exceed to appear in
// the derived featured list. featuredPostsCap bounds that list.
const (
	FeaturedViewsThreshold = 1000
	FeaturedPostsCap       = 3
)

// BlogPost is an article on the content site. Views is incremented on every
// single-post read, so fetching a post is deliberately not idempotent for
// that field.
type BlogPost struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Content       string    `json:"content" bson:"content"`
	Excerpt       string    `json:"excerpt" bson:"excerpt"`
	FeaturedImage string    `json:"featured_image" bson:"featured_image"`
	Author        string    `json:"author" bson:"author"`
	Category      string    `json:"category" bson:"category"`
	Tags          []string  `json:"tags" bson:"tags"`
	PublishedAt   time.Time `json:"published_at" bson:"published_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	Views         int64     `json:"views" bson:"views"`
	Likes         int64     `json:"likes" bson:"likes"`
	IsPublished   bool      `json:"is_published" bson:"is_published"`
}
