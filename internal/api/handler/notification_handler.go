package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// NotificationHandler handles HTTP requests for notifications and push
// subscriptions.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type sendNotificationRequest struct {
	Type      string `json:"type"       validate:"omitempty,oneof=info success warning error"`
	Title     string `json:"title"      validate:"required"`
	Message   string `json:"message"    validate:"required"`
	ActionURL string `json:"action_url" validate:"omitempty,url"`
}

type subscribeRequest struct {
	Endpoint string            `json:"endpoint" validate:"required,url"`
	Keys     map[string]string `json:"keys"`
}

type listNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// List returns all notifications, newest first, with the unread count.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  listNotificationsResponse
// @Security     BearerAuth
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	listing, err := h.service.ListNotifications(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listNotificationsResponse{
		Notifications: listing.Notifications,
		UnreadCount:   listing.UnreadCount,
	})
}

// MarkRead marks one notification as read.
//
// @Summary      Mark notification read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	n, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Send creates a notification and fans it out to push subscribers in the
// background.
//
// @Summary      Send notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      sendNotificationRequest  true  "Notification details"
// @Success      201   {object}  domain.Notification
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/notifications/send [post]
func (h *NotificationHandler) Send(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	n, err := h.service.Send(c.Request().Context(), ports.SendNotificationInput{
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		ActionURL: req.ActionURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, n)
}

// Subscribe registers the caller's push subscription endpoint.
//
// @Summary      Subscribe to push notifications
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Push subscription"
// @Success      200   {object}  ackResponse
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/notifications/subscribe [post]
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.service.Subscribe(c.Request().Context(), domain.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		Keys:     req.Keys,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ackResponse{Message: "Subscribed to notifications"})
}
