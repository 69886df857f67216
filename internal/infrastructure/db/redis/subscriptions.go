package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/selvanails/selva-api/internal/core/domain"
)

const subscriptionsKey = "push:subscriptions"

// SubscriptionStore keeps push subscriptions in a Redis hash keyed by user,
// so re-subscribing replaces a user's previous endpoint instead of stacking
// duplicates.
type SubscriptionStore struct {
	client *redis.Client
}

// NewSubscriptionStore creates a SubscriptionStore wrapping the given client.
func NewSubscriptionStore(client *redis.Client) *SubscriptionStore {
	return &SubscriptionStore{client: client}
}

// Save stores or replaces the subscription for sub.UserID.
func (s *SubscriptionStore) Save(ctx context.Context, sub domain.PushSubscription) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal subscription: %w", err)
	}
	return s.client.HSet(ctx, subscriptionsKey, sub.UserID, payload).Err()
}

// All returns every stored subscription. Entries that fail to decode are
// skipped rather than failing the whole broadcast.
func (s *SubscriptionStore) All(ctx context.Context) ([]domain.PushSubscription, error) {
	raw, err := s.client.HGetAll(ctx, subscriptionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load subscriptions: %w", err)
	}

	subs := make([]domain.PushSubscription, 0, len(raw))
	for _, payload := range raw {
		var sub domain.PushSubscription
		if err := json.Unmarshal([]byte(payload), &sub); err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
