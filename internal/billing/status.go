package billing

import (
	"math"
	"time"

	"example.com/bill-tracker/internal/models"
)

// StatusOf выводит статус счета относительно момента now.
// Оплаченный счет всегда paid; неоплаченный становится overdue, как только
// календарная дата due_date оказывается строго раньше текущей даты.
func StatusOf(bill models.Bill, now time.Time) models.BillStatus {
	if bill.PaidDate != nil {
		return models.BillStatusPaid
	}

	if DaysUntilDue(bill.DueDate, now) < 0 {
		return models.BillStatusOverdue
	}

	return models.BillStatusPending
}

// DaysUntilDue считает дни до срока оплаты с округлением вверх:
// 0 — срок сегодня, отрицательное значение — срок прошел.
func DaysUntilDue(dueDate, now time.Time) int {
	diff := dueDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// DueSoonWindowDays — включительное окно "скоро срок" в днях до оплаты.
const DueSoonWindowDays = 3
