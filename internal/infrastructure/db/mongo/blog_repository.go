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

const blogCollection = "blog_posts"

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(blogCollection)}
}

// List returns published posts matching the filter, newest publishedAt
// first. Unpublished drafts never leave this method.
func (r *BlogRepository) List(ctx context.Context, filter ports.BlogFilter) ([]domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_published": true}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		regex := searchRegex(filter.Search)
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"excerpt": regex},
			bson.M{"content": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []domain.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.BlogPost
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// IncrementViews bumps the view counter of a published post by one with an
// atomic $inc, returning the updated post. Concurrent reads each count.
func (r *BlogRepository) IncrementViews(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "is_published": true}
	update := bson.M{"$inc": bson.M{"views": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p domain.BlogPost
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepository) Insert(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *BlogRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the listing indexes on the blog collection.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "published_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
