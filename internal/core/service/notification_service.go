package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// NotificationService implements the announcement inbox plus push broadcast.
// Sending a notification fans deliveries out to every stored push
// subscription through the dispatcher; delivery happens off the request path.
type notificationService struct {
	repo       ports.NotificationRepository
	subs       ports.SubscriptionStore
	dispatcher ports.PushDispatcher
	log        zerolog.Logger
}

func NewNotificationService(
	repo ports.NotificationRepository,
	subs ports.SubscriptionStore,
	dispatcher ports.PushDispatcher,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{repo: repo, subs: subs, dispatcher: dispatcher, log: log}
}

func (s *notificationService) ListNotifications(ctx context.Context) (*ports.NotificationListing, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &ports.NotificationListing{Notifications: notifications, UnreadCount: unread}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.MarkRead(ctx, id)
}

// Send stores the notification, then enqueues one push delivery per known
// subscription. Subscription lookup failures do not fail the send; the
// notification is already persisted and visible in the inbox.
func (s *notificationService) Send(ctx context.Context, in ports.SendNotificationInput) (*domain.Notification, error) {
	kind := in.Type
	if kind == "" {
		kind = domain.NotificationInfo
	}

	n := &domain.Notification{
		Type:      kind,
		Title:     in.Title,
		Message:   in.Message,
		Read:      false,
		ActionURL: in.ActionURL,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, n)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store notification")
		return nil, err
	}

	subs, err := s.subs.All(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load push subscriptions, skipping fan-out")
		return created, nil
	}

	for _, sub := range subs {
		s.dispatcher.Enqueue(ports.PushDelivery{Subscription: sub, Notification: *created})
	}

	s.log.Info().Str("notification_id", created.ID).Int("subscribers", len(subs)).Msg("notification sent")
	return created, nil
}

func (s *notificationService) Subscribe(ctx context.Context, sub domain.PushSubscription) error {
	return s.subs.Save(ctx, sub)
}
