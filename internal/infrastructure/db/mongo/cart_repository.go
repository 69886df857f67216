package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/selvanails/selva-api/internal/core/domain"
)

const cartCollection = "cart_items"

// CartRepository stores one document per (user_id, product_id) pair. The
// quantity accumulation on repeated adds is a single atomic findOneAndUpdate
// with $inc, so concurrent adds never lose updates.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(cartCollection)}
}

func (r *CartRepository) Upsert(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"user_id": userID, "product_id": productID}
	update := bson.M{
		"$inc": bson.M{"quantity": quantity},
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"user_id":    userID,
			"product_id": productID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var item domain.CartItem
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []domain.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes exactly the (userID, productID) document, never the whole
// cart.
func (r *CartRepository) Remove(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID, "product_id": productID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// EnsureIndexes creates the unique (user_id, product_id) index backing the
// accumulate-on-add contract.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
