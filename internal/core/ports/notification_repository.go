package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

type NotificationRepository interface {
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]domain.Notification, error)
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// MarkRead sets the read flag and returns the updated notification.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

// SubscriptionStore persists push subscriptions, keyed by user.
type SubscriptionStore interface {
	Save(ctx context.Context, sub domain.PushSubscription) error
	All(ctx context.Context) ([]domain.PushSubscription, error)
}
