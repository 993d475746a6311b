package billing

import (
	"testing"
	"time"

	"example.com/bill-tracker/internal/models"
)

// TestStatusOfPaid проверяет, что оплаченный счет всегда paid.
func TestStatusOfPaid(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	paidOn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	bill := models.Bill{
		DueDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		PaidDate: &paidOn,
	}

	if got := StatusOf(bill, now); got != models.BillStatusPaid {
		t.Fatalf("expected paid, got %s", got)
	}
}

// TestStatusOfOverdue проверяет переход в overdue после срока оплаты.
func TestStatusOfOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	bill := models.Bill{DueDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)}
	if got := StatusOf(bill, now); got != models.BillStatusOverdue {
		t.Fatalf("expected overdue, got %s", got)
	}
}

// TestStatusOfPendingToday проверяет, что счет со сроком сегодня еще pending.
func TestStatusOfPendingToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	bill := models.Bill{DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}
	if got := StatusOf(bill, now); got != models.BillStatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
}

// TestDaysUntilDue проверяет округление дней до срока вверх.
func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		dueDate time.Time
		want    int
	}{
		{"today", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 0},
		{"tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{"in three days", time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), 3},
		{"in four days", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 4},
		{"yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), -1},
		{"week ago", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), -7},
	}

	for _, tc := range cases {
		if got := DaysUntilDue(tc.dueDate, now); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
