package notify

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/bill-tracker/internal/models"
)

// TestCenterRefreshCarriesRead проверяет перенос флага read между пересчетами.
func TestCenterRefreshCarriesRead(t *testing.T) {
	center := NewCenter(nil)
	userID := uuid.New()
	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	first := center.Refresh(userID, []models.Bill{bill}, deriveNow)
	if len(first) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(first))
	}

	center.MarkRead(userID, first[0].ID)
	if got := center.Unread(userID); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}

	second := center.Refresh(userID, []models.Bill{bill}, deriveNow.Add(time.Hour))
	if len(second) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(second))
	}
	if !second[0].Read {
		t.Fatal("expected read flag to survive refresh")
	}
}

// TestCenterMarkAllRead проверяет массовую отметку прочитанности.
func TestCenterMarkAllRead(t *testing.T) {
	center := NewCenter(nil)
	userID := uuid.New()
	bills := []models.Bill{
		makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		makeBill("Water", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
	}

	center.Refresh(userID, bills, deriveNow)
	center.MarkAllRead(userID)

	if got := center.Unread(userID); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}
}

// TestCenterForget проверяет очистку состояния пользователя.
func TestCenterForget(t *testing.T) {
	center := NewCenter(nil)
	userID := uuid.New()
	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	notifications := center.Refresh(userID, []models.Bill{bill}, deriveNow)
	center.MarkRead(userID, notifications[0].ID)
	center.Forget(userID)

	// После забытого состояния прежний read не переносится.
	reborn := center.Refresh(userID, []models.Bill{bill}, deriveNow)
	if len(reborn) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(reborn))
	}
	if reborn[0].Read {
		t.Fatal("expected notification to be unread after forget")
	}
}

// TestCenterPublishesUnread проверяет публикацию числа непрочитанных в хаб.
func TestCenterPublishesUnread(t *testing.T) {
	hub := NewHub()
	center := NewCenter(hub)
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	center.Refresh(userID, []models.Bill{bill}, deriveNow)

	select {
	case event := <-ch:
		if event.Type != EventNotificationsUpdated {
			t.Fatalf("expected %s, got %s", EventNotificationsUpdated, event.Type)
		}
		data, ok := event.Data.(map[string]int)
		if !ok {
			t.Fatalf("unexpected event data type %T", event.Data)
		}
		if data["unread"] != 1 {
			t.Fatalf("expected 1 unread, got %d", data["unread"])
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}
