package domain

import (
	"errors"
	"time"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

// Testimonial is a customer review. New testimonials are always created
// unapproved and unfeatured; approval is a one-way transition performed by an
// admin. There is no operation to revoke approval.
type Testimonial struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	CustomerName  string    `json:"customer_name" bson:"customer_name"`
	CustomerImage string    `json:"customer_image,omitempty" bson:"customer_image,omitempty"`
	Rating        int       `json:"rating" bson:"rating"`
	Review        string    `json:"review" bson:"review"`
	ServiceUsed   string    `json:"service_used" bson:"service_used"`
	BeforeImage   string    `json:"before_image,omitempty" bson:"before_image,omitempty"`
	AfterImage    string    `json:"after_image,omitempty" bson:"after_image,omitempty"`
	IsApproved    bool      `json:"is_approved" bson:"is_approved"`
	IsFeatured    bool      `json:"is_featured" bson:"is_featured"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
