package notify

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/bill-tracker/internal/models"
)

var deriveNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func makeBill(name string, dueDate time.Time) models.Bill {
	return models.Bill{
		ID:      uuid.New(),
		Name:    name,
		DueDate: dueDate,
	}
}

// TestDeriveOverdue проверяет уведомление об уже просроченном счете.
func TestDeriveOverdue(t *testing.T) {
	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	notifications := Derive([]models.Bill{bill}, deriveNow, nil)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}

	got := notifications[0]
	if got.ID != OverdueID(bill.ID) {
		t.Fatalf("unexpected id: %s", got.ID)
	}
	if got.Kind != models.NotificationKindError {
		t.Fatalf("expected error kind, got %s", got.Kind)
	}
	if got.Message != `Bill "Internet" was due on 2026-03-05.` {
		t.Fatalf("unexpected message: %s", got.Message)
	}
	if got.Read {
		t.Fatal("expected new notification to be unread")
	}
}

// TestDeriveDueSoonWindow проверяет включительное окно "скоро срок".
func TestDeriveDueSoonWindow(t *testing.T) {
	dueToday := makeBill("Water", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	dueTomorrow := makeBill("Power", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	dueInThree := makeBill("Rent", time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC))
	dueInFour := makeBill("Phone", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

	notifications := Derive([]models.Bill{dueToday, dueTomorrow, dueInThree, dueInFour}, deriveNow, nil)
	if len(notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifications))
	}

	for _, notification := range notifications {
		if notification.Kind != models.NotificationKindWarning {
			t.Fatalf("expected warning kind, got %s", notification.Kind)
		}
		if notification.BillID == dueInFour.ID {
			t.Fatal("bill due in four days must not produce a notification")
		}
	}

	if notifications[0].Message != `Bill "Water" is due today.` {
		t.Fatalf("unexpected message: %s", notifications[0].Message)
	}
	if notifications[1].Message != `Bill "Power" is due tomorrow.` {
		t.Fatalf("unexpected message: %s", notifications[1].Message)
	}
	if notifications[2].Message != `Bill "Rent" is due in 3 days.` {
		t.Fatalf("unexpected message: %s", notifications[2].Message)
	}
}

// TestDeriveSkipsPaid проверяет, что оплаченный счет не дает уведомлений.
func TestDeriveSkipsPaid(t *testing.T) {
	paidOn := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	bill.PaidDate = &paidOn

	if notifications := Derive([]models.Bill{bill}, deriveNow, nil); len(notifications) != 0 {
		t.Fatalf("expected no notifications, got %d", len(notifications))
	}
}

// TestDeriveIdempotent проверяет, что повторный расчет по тем же счетам
// дает тот же набор идентификаторов и сохраняет флаги read.
func TestDeriveIdempotent(t *testing.T) {
	bills := []models.Bill{
		makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		makeBill("Rent", time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)),
	}

	first := Derive(bills, deriveNow, nil)
	first = MarkRead(first, first[0].ID)

	second := Derive(bills, deriveNow, first)
	if len(second) != len(first) {
		t.Fatalf("expected %d notifications, got %d", len(first), len(second))
	}

	for i := range second {
		if second[i].ID != first[i].ID {
			t.Fatalf("expected stable id %s, got %s", first[i].ID, second[i].ID)
		}
	}

	if !second[0].Read {
		t.Fatal("expected read flag to survive recompute")
	}
	if second[1].Read {
		t.Fatal("expected untouched notification to stay unread")
	}
}

// TestDeriveReadSurvivesUnrelatedChange проверяет перенос read при
// добавлении нового счета.
func TestDeriveReadSurvivesUnrelatedChange(t *testing.T) {
	overdue := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	previous := Derive([]models.Bill{overdue}, deriveNow, nil)
	previous = MarkAllRead(previous)

	added := makeBill("Water", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	next := Derive([]models.Bill{overdue, added}, deriveNow, previous)

	if len(next) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(next))
	}

	for _, notification := range next {
		switch notification.ID {
		case OverdueID(overdue.ID):
			if !notification.Read {
				t.Fatal("expected carried notification to stay read")
			}
		case DueSoonID(added.ID):
			if notification.Read {
				t.Fatal("expected new notification to be unread")
			}
		default:
			t.Fatalf("unexpected notification id %s", notification.ID)
		}
	}
}

// TestDeriveDropsRemovedBills проверяет, что уведомление исчезает вместе
// со счетом и не оставляет следа для будущих пересчетов.
func TestDeriveDropsRemovedBills(t *testing.T) {
	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	previous := Derive([]models.Bill{bill}, deriveNow, nil)
	previous = MarkAllRead(previous)

	empty := Derive(nil, deriveNow, previous)
	if len(empty) != 0 {
		t.Fatalf("expected no notifications, got %d", len(empty))
	}

	// Условие вернулось: уведомление рождается заново непрочитанным.
	again := Derive([]models.Bill{bill}, deriveNow, empty)
	if len(again) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(again))
	}
	if again[0].Read {
		t.Fatal("expected reborn notification to be unread")
	}
}

// TestMarkReadUnknownID проверяет no-op для неизвестного идентификатора.
func TestMarkReadUnknownID(t *testing.T) {
	bill := makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	notifications := Derive([]models.Bill{bill}, deriveNow, nil)

	updated := MarkRead(notifications, "missing")
	if len(updated) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(updated))
	}
	if updated[0].Read {
		t.Fatal("expected notification to stay unread")
	}
}

// TestUnreadCount проверяет подсчет непрочитанных уведомлений.
func TestUnreadCount(t *testing.T) {
	bills := []models.Bill{
		makeBill("Internet", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		makeBill("Water", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
	}

	notifications := Derive(bills, deriveNow, nil)
	if got := UnreadCount(notifications); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}

	notifications = MarkRead(notifications, notifications[0].ID)
	if got := UnreadCount(notifications); got != 1 {
		t.Fatalf("expected 1 unread, got %d", got)
	}

	notifications = MarkAllRead(notifications)
	if got := UnreadCount(notifications); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}
}
