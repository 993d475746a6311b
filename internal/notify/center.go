package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/bill-tracker/internal/models"
)

// Center хранит последний производный набор уведомлений на пользователя.
// Единственный переносимый между пересчетами факт — флаг read; сами
// уведомления живут только до следующего пересчета.
type Center struct {
	mu     sync.Mutex
	byUser map[uuid.UUID][]models.Notification
	hub    *Hub
}

// NewCenter создает центр уведомлений; hub может быть nil.
func NewCenter(hub *Hub) *Center {
	return &Center{
		byUser: make(map[uuid.UUID][]models.Notification),
		hub:    hub,
	}
}

// Refresh пересчитывает уведомления пользователя по снимку счетов,
// перенося флаги read из предыдущего набора, и публикует число непрочитанных.
func (c *Center) Refresh(userID uuid.UUID, bills []models.Bill, now time.Time) []models.Notification {
	c.mu.Lock()
	derived := Derive(bills, now, c.byUser[userID])
	c.byUser[userID] = derived
	snapshot := copyNotifications(derived)
	c.mu.Unlock()

	c.publishUnread(userID, UnreadCount(snapshot))
	return snapshot
}

// List возвращает копию текущего набора уведомлений пользователя.
func (c *Center) List(userID uuid.UUID) []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return copyNotifications(c.byUser[userID])
}

// MarkRead отмечает уведомление прочитанным; отсутствующий id — no-op.
func (c *Center) MarkRead(userID uuid.UUID, id string) {
	c.mu.Lock()
	c.byUser[userID] = MarkRead(c.byUser[userID], id)
	unread := UnreadCount(c.byUser[userID])
	c.mu.Unlock()

	c.publishUnread(userID, unread)
}

// MarkAllRead отмечает все уведомления пользователя прочитанными.
func (c *Center) MarkAllRead(userID uuid.UUID) {
	c.mu.Lock()
	c.byUser[userID] = MarkAllRead(c.byUser[userID])
	c.mu.Unlock()

	c.publishUnread(userID, 0)
}

// Unread возвращает число непрочитанных уведомлений пользователя.
func (c *Center) Unread(userID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return UnreadCount(c.byUser[userID])
}

// Forget удаляет состояние пользователя, например при удалении аккаунта.
func (c *Center) Forget(userID uuid.UUID) {
	c.mu.Lock()
	delete(c.byUser, userID)
	c.mu.Unlock()
}

func (c *Center) publishUnread(userID uuid.UUID, unread int) {
	if c.hub == nil {
		return
	}

	c.hub.Publish(userID, Event{
		Type: EventNotificationsUpdated,
		Data: map[string]int{"unread": unread},
	})
}

func copyNotifications(notifications []models.Notification) []models.Notification {
	snapshot := make([]models.Notification, len(notifications))
	copy(snapshot, notifications)
	return snapshot
}
