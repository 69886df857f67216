package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// NotificationListing bundles all notifications with the unread count.
type NotificationListing struct {
	Notifications []domain.Notification
	UnreadCount   int
}

type SendNotificationInput struct {
	Type      string
	Title     string
	Message   string
	ActionURL string
}

// PushDelivery is one pending delivery of a notification to a subscription.
type PushDelivery struct {
	Subscription domain.PushSubscription
	Notification domain.Notification
}

// PushDispatcher fans deliveries out to background workers.
type PushDispatcher interface {
	Enqueue(delivery PushDelivery)
}

type NotificationService interface {
	ListNotifications(ctx context.Context) (*NotificationListing, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	Send(ctx context.Context, in SendNotificationInput) (*domain.Notification, error)
	Subscribe(ctx context.Context, sub domain.PushSubscription) error
}
