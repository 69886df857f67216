package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is a site-wide announcement shown in the client's inbox.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Type      string    `json:"type" bson:"type"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	ActionURL string    `json:"action_url,omitempty" bson:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// PushSubscription is a browser push endpoint registered by a user. Delivery
// itself is out of scope; subscriptions are stored so broadcasts can be
// fanned out to the delivery workers.
type PushSubscription struct {
	UserID   string            `json:"user_id"`
	Endpoint string            `json:"endpoint"`
	Keys     map[string]string `json:"keys,omitempty"`
}
