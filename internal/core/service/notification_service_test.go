package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
	nextID        int
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) List(_ context.Context) ([]domain.Notification, error) {
	out := []domain.Notification{}
	for _, n := range r.notifications {
		out = append(out, *n)
	}
	return out, nil
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	copy := *n
	r.nextID++
	copy.ID = fmt.Sprintf("ntf_%d", r.nextID)
	r.notifications[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	n.Read = true
	clone := *n
	return &clone, nil
}

type stubSubscriptionStore struct {
	subs    map[string]domain.PushSubscription
	failAll bool
}

func newStubSubscriptionStore() *stubSubscriptionStore {
	return &stubSubscriptionStore{subs: make(map[string]domain.PushSubscription)}
}

func (s *stubSubscriptionStore) Save(_ context.Context, sub domain.PushSubscription) error {
	s.subs[sub.UserID] = sub
	return nil
}

func (s *stubSubscriptionStore) All(_ context.Context) ([]domain.PushSubscription, error) {
	if s.failAll {
		return nil, errors.New("redis down")
	}
	out := make([]domain.PushSubscription, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	return out, nil
}

type stubDispatcher struct {
	deliveries []ports.PushDelivery
}

func (d *stubDispatcher) Enqueue(delivery ports.PushDelivery) {
	d.deliveries = append(d.deliveries, delivery)
}

func newNotificationFixture() (ports.NotificationService, *stubNotificationRepo, *stubSubscriptionStore, *stubDispatcher) {
	repo := newStubNotificationRepo()
	subs := newStubSubscriptionStore()
	dispatcher := &stubDispatcher{}
	svc := NewNotificationService(repo, subs, dispatcher, zerolog.Nop())
	return svc, repo, subs, dispatcher
}

func TestNotificationService_Send_FansOutToSubscribers(t *testing.T) {
	svc, _, subs, dispatcher := newNotificationFixture()

	_ = subs.Save(context.Background(), domain.PushSubscription{UserID: "u1", Endpoint: "https://push/1"})
	_ = subs.Save(context.Background(), domain.PushSubscription{UserID: "u2", Endpoint: "https://push/2"})

	created, err := svc.Send(context.Background(), ports.SendNotificationInput{
		Type:    domain.NotificationSuccess,
		Title:   "Sale",
		Message: "20% off gel polish this week",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected stored notification with id")
	}
	if len(dispatcher.deliveries) != 2 {
		t.Fatalf("expected 2 enqueued deliveries, got %d", len(dispatcher.deliveries))
	}
	for _, d := range dispatcher.deliveries {
		if d.Notification.ID != created.ID {
			t.Fatalf("delivery references wrong notification: %+v", d)
		}
	}
}

func TestNotificationService_Send_DefaultsTypeToInfo(t *testing.T) {
	svc, _, _, _ := newNotificationFixture()

	created, err := svc.Send(context.Background(), ports.SendNotificationInput{
		Title:   "Heads up",
		Message: "New opening hours",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if created.Type != domain.NotificationInfo {
		t.Fatalf("expected info type, got %s", created.Type)
	}
}

// A subscription lookup failure must not fail the send; the notification is
// already stored and visible in the inbox.
func TestNotificationService_Send_SubscriptionFailureIsNonFatal(t *testing.T) {
	svc, repo, subs, dispatcher := newNotificationFixture()
	subs.failAll = true

	created, err := svc.Send(context.Background(), ports.SendNotificationInput{
		Title:   "Sale",
		Message: "...",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if _, ok := repo.notifications[created.ID]; !ok {
		t.Fatalf("notification was not persisted")
	}
	if len(dispatcher.deliveries) != 0 {
		t.Fatalf("expected no deliveries, got %d", len(dispatcher.deliveries))
	}
}

func TestNotificationService_List_CountsUnread(t *testing.T) {
	svc, repo, _, _ := newNotificationFixture()

	first, _ := repo.Insert(context.Background(), &domain.Notification{Title: "a"})
	_, _ = repo.Insert(context.Background(), &domain.Notification{Title: "b"})

	if _, err := svc.MarkRead(context.Background(), first.ID); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}

	listing, err := svc.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("ListNotifications returned error: %v", err)
	}
	if len(listing.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(listing.Notifications))
	}
	if listing.UnreadCount != 1 {
		t.Fatalf("expected 1 unread, got %d", listing.UnreadCount)
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, _, _, _ := newNotificationFixture()

	if _, err := svc.MarkRead(context.Background(), "missing"); err != domain.ErrNotificationNotFound {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_Subscribe_Stores(t *testing.T) {
	svc, _, subs, _ := newNotificationFixture()

	err := svc.Subscribe(context.Background(), domain.PushSubscription{
		UserID:   "u1",
		Endpoint: "https://push/1",
		Keys:     map[string]string{"auth": "k"},
	})
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if _, ok := subs.subs["u1"]; !ok {
		t.Fatalf("subscription was not stored")
	}
}
