package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

const testimonialsCollection = "testimonials"

type TestimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{col: db.Collection(testimonialsCollection)}
}

func (r *TestimonialRepository) List(ctx context.Context, filter ports.TestimonialFilter) ([]domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Approved != nil {
		query["is_approved"] = *filter.Approved
	}
	if filter.Featured != nil {
		query["is_featured"] = *filter.Featured
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	testimonials := []domain.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Testimonial
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) Insert(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTestimonialNotFound
	}
	return nil
}

// Approve atomically flips is_approved and returns the updated document.
// The transition is one-way; there is no corresponding revoke.
func (r *TestimonialRepository) Approve(ctx context.Context, id string) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"is_approved": true,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t domain.Testimonial
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}
