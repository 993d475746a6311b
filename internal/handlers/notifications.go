package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/bill-tracker/internal/auth"
	"example.com/bill-tracker/internal/models"
	"example.com/bill-tracker/internal/notify"
	"example.com/bill-tracker/internal/repository"
)

type NotificationHandler struct {
	Bills  *repository.BillRepository
	Center *notify.Center
	Hub    *notify.Hub
}

// NewNotificationHandler создает обработчик уведомлений.
func NewNotificationHandler(bills *repository.BillRepository, center *notify.Center, hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{Bills: bills, Center: center, Hub: hub}
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// List пересчитывает и возвращает уведомления пользователя.
// Пересчет при каждом чтении нужен, чтобы переход даты отражался
// без мутаций счетов; флаги read переживают пересчет.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	bills, err := h.Bills.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	notifications := h.Center.Refresh(userID, bills, time.Now().UTC())

	return c.JSON(http.StatusOK, NotificationListResponse{
		Notifications: notifications,
		Unread:        notify.UnreadCount(notifications),
	})
}

// MarkRead отмечает уведомление прочитанным; неизвестный id — no-op.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id := c.Param("id")
	if id == "" {
		return badRequest(c, "notification id is required")
	}

	h.Center.MarkRead(userID, id)
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead отмечает все уведомления пользователя прочитанными.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	h.Center.MarkAllRead(userID)
	return c.NoContent(http.StatusNoContent)
}

// Stream открывает SSE-поток событий для пользователя.
func (h *NotificationHandler) Stream(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return serverError(c)
	}

	ch, unsubscribe := h.Hub.Subscribe(userID)
	defer unsubscribe()

	_ = writeSSE(c, notify.Event{Type: "connected", Data: map[string]string{"user_id": userID.String()}})
	flusher.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writeSSE(c, event); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeSSE(c echo.Context, event notify.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := c.Response().Write([]byte("event: " + event.Type + "\n")); err != nil {
		return err
	}
	if _, err := c.Response().Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
		return err
	}

	return nil
}
