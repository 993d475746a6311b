package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/bill-tracker/internal/billing"
	"example.com/bill-tracker/internal/models"
)

const (
	overdueIDPrefix = "overdue-"
	dueSoonIDPrefix = "due-soon-"

	dateLayout = "2006-01-02"
)

// OverdueID возвращает детерминированный идентификатор уведомления о просрочке.
func OverdueID(billID uuid.UUID) string {
	return overdueIDPrefix + billID.String()
}

// DueSoonID возвращает детерминированный идентификатор уведомления о близком сроке.
func DueSoonID(billID uuid.UUID) string {
	return dueSoonIDPrefix + billID.String()
}

// Derive пересчитывает набор уведомлений по текущим счетам.
// Идентификаторы детерминированы парой (вид, счет), поэтому повторный расчет
// для того же условия дает тот же id; флаг read переносится из previous по id,
// уведомления исчезнувших условий отбрасываются без следа.
func Derive(bills []models.Bill, now time.Time, previous []models.Notification) []models.Notification {
	readIDs := make(map[string]struct{}, len(previous))
	for _, notification := range previous {
		if notification.Read {
			readIDs[notification.ID] = struct{}{}
		}
	}

	derived := make([]models.Notification, 0)
	for _, bill := range bills {
		if billing.StatusOf(bill, now) == models.BillStatusPaid {
			continue
		}

		days := billing.DaysUntilDue(bill.DueDate, now)

		var notification models.Notification
		switch {
		case days < 0:
			notification = models.Notification{
				ID:      OverdueID(bill.ID),
				BillID:  bill.ID,
				Kind:    models.NotificationKindError,
				Title:   "Overdue Bill!",
				Message: fmt.Sprintf("Bill %q was due on %s.", bill.Name, bill.DueDate.Format(dateLayout)),
			}
		case days <= billing.DueSoonWindowDays:
			notification = models.Notification{
				ID:      DueSoonID(bill.ID),
				BillID:  bill.ID,
				Kind:    models.NotificationKindWarning,
				Title:   "Due Soon",
				Message: fmt.Sprintf("Bill %q is due %s.", bill.Name, describeDays(days)),
			}
		default:
			continue
		}

		notification.CreatedAt = now
		_, notification.Read = readIDs[notification.ID]
		derived = append(derived, notification)
	}

	return derived
}

// MarkRead возвращает копию списка с отмеченным уведомлением; отсутствующий
// id — не ошибка, список возвращается без изменений.
func MarkRead(notifications []models.Notification, id string) []models.Notification {
	updated := make([]models.Notification, len(notifications))
	for i, notification := range notifications {
		if notification.ID == id {
			notification.Read = true
		}
		updated[i] = notification
	}

	return updated
}

// MarkAllRead возвращает копию списка, где все уведомления прочитаны.
func MarkAllRead(notifications []models.Notification) []models.Notification {
	updated := make([]models.Notification, len(notifications))
	for i, notification := range notifications {
		notification.Read = true
		updated[i] = notification
	}

	return updated
}

// UnreadCount считает непрочитанные уведомления.
func UnreadCount(notifications []models.Notification) int {
	count := 0
	for _, notification := range notifications {
		if !notification.Read {
			count++
		}
	}

	return count
}

func describeDays(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
