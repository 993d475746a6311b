package handlers

import (
	"testing"
	"time"

	"example.com/bill-tracker/internal/models"
)

// TestParseDateValid проверяет корректный разбор даты.
func TestParseDateValid(t *testing.T) {
	parsed, err := parseDate(" 2026-03-10 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if parsed.Format(dateLayout) != "2026-03-10" {
		t.Fatalf("unexpected date: %s", parsed.Format(dateLayout))
	}
}

// TestParseDateInvalid проверяет ошибки при неверном формате даты.
func TestParseDateInvalid(t *testing.T) {
	if _, err := parseDate("2026/03/10"); err == nil {
		t.Fatal("expected error for slash format")
	}

	if _, err := parseDate("10-03-2026"); err == nil {
		t.Fatal("expected error for reversed format")
	}
}

// TestToBillResponseStatus проверяет выведение статуса в ответе.
func TestToBillResponseStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	pending := models.Bill{DueDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)}
	if got := toBillResponse(pending, now); got.Status != models.BillStatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}

	overdue := models.Bill{DueDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)}
	if got := toBillResponse(overdue, now); got.Status != models.BillStatusOverdue {
		t.Fatalf("expected overdue, got %s", got.Status)
	}

	paidOn := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	paid := models.Bill{DueDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), PaidDate: &paidOn}
	response := toBillResponse(paid, now)
	if response.Status != models.BillStatusPaid {
		t.Fatalf("expected paid, got %s", response.Status)
	}
	if response.PaidDate == nil || *response.PaidDate != "2026-03-09" {
		t.Fatalf("unexpected paid date: %v", response.PaidDate)
	}
}
