package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/bill-tracker/internal/auth"
	"example.com/bill-tracker/internal/billing"
	"example.com/bill-tracker/internal/models"
	"example.com/bill-tracker/internal/notify"
	"example.com/bill-tracker/internal/repository"
)

const dateLayout = "2006-01-02"

type BillHandler struct {
	Bills    *repository.BillRepository
	Center   *notify.Center
	Notifier *notify.Hub
}

// NewBillHandler создает обработчик счетов.
func NewBillHandler(bills *repository.BillRepository, center *notify.Center, notifier *notify.Hub) *BillHandler {
	return &BillHandler{Bills: bills, Center: center, Notifier: notifier}
}

type BillRequest struct {
	Name        string              `json:"name" validate:"required,max=200"`
	AmountCents int64               `json:"amount_cents" validate:"gte=0"`
	Category    models.BillCategory `json:"category" validate:"required,oneof=utilities food general housing"`
	DueDate     string              `json:"due_date" validate:"required"`
}

type BillResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	AmountCents int64               `json:"amount_cents"`
	Category    models.BillCategory `json:"category"`
	DueDate     string              `json:"due_date"`
	PaidDate    *string             `json:"paid_date,omitempty"`
	Status      models.BillStatus   `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// List возвращает счета пользователя со статусом, выведенным на момент запроса.
func (h *BillHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	bills, err := h.Bills.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	now := time.Now().UTC()
	h.Center.Refresh(userID, bills, now)

	response := make([]BillResponse, 0, len(bills))
	for _, bill := range bills {
		response = append(response, toBillResponse(bill, now))
	}

	return c.JSON(http.StatusOK, BillListResponse{Bills: response})
}

// Create создает новый счет без даты оплаты.
func (h *BillHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	name, amountCents, category, dueDate, err := h.bindBillRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	bill, err := h.Bills.Create(c.Request().Context(), userID, name, amountCents, category, dueDate)
	if err != nil {
		return serverError(c)
	}

	now := h.refreshNotifications(c.Request().Context(), userID)
	return c.JSON(http.StatusCreated, toBillResponse(bill, now))
}

// Update обновляет изменяемые поля счета; дата оплаты не затрагивается.
func (h *BillHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid bill id")
	}

	name, amountCents, category, dueDate, err := h.bindBillRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	bill, err := h.Bills.Update(c.Request().Context(), userID, billID, name, amountCents, category, dueDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "bill not found")
		}
		return serverError(c)
	}

	now := h.refreshNotifications(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, toBillResponse(bill, now))
}

// Delete удаляет счет; повторное удаление того же id — no-op.
func (h *BillHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid bill id")
	}

	if err := h.Bills.Delete(c.Request().Context(), userID, billID); err != nil {
		return serverError(c)
	}

	h.refreshNotifications(c.Request().Context(), userID)
	return c.NoContent(http.StatusNoContent)
}

// TogglePaid переключает оплаченность счета: единственная точка перехода
// paid ⇄ pending/overdue.
func (h *BillHandler) TogglePaid(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid bill id")
	}

	paidOn := time.Now().UTC().Truncate(24 * time.Hour)
	bill, err := h.Bills.TogglePaid(c.Request().Context(), userID, billID, paidOn)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "bill not found")
		}
		return serverError(c)
	}

	now := h.refreshNotifications(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, toBillResponse(bill, now))
}

// Clear удаляет все счета пользователя (инструменты разработчика).
func (h *BillHandler) Clear(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.Bills.DeleteAllByUser(c.Request().Context(), userID); err != nil {
		return serverError(c)
	}

	h.refreshNotifications(c.Request().Context(), userID)
	return c.NoContent(http.StatusNoContent)
}

func (h *BillHandler) bindBillRequest(c echo.Context) (string, int64, models.BillCategory, time.Time, error) {
	var req BillRequest
	if err := c.Bind(&req); err != nil {
		return "", 0, "", time.Time{}, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return "", 0, "", time.Time{}, errors.New("validation failed")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", 0, "", time.Time{}, errors.New("name is required")
	}

	if req.AmountCents < 0 {
		return "", 0, "", time.Time{}, errors.New("amount_cents must not be negative")
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return "", 0, "", time.Time{}, errors.New("invalid due_date format")
	}

	return name, req.AmountCents, req.Category, dueDate, nil
}

// refreshNotifications пересчитывает уведомления по свежему снимку счетов
// и оповещает SSE-подписчиков об изменении списка.
func (h *BillHandler) refreshNotifications(ctx context.Context, userID uuid.UUID) time.Time {
	now := time.Now().UTC()

	bills, err := h.Bills.ListByUser(ctx, userID)
	if err != nil {
		return now
	}

	h.Center.Refresh(userID, bills, now)
	if h.Notifier != nil {
		h.Notifier.Publish(userID, notify.Event{
			Type: notify.EventBillsUpdated,
			Data: map[string]int{"count": len(bills)},
		})
	}

	return now
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func toBillResponse(bill models.Bill, now time.Time) BillResponse {
	var paidDate *string
	if bill.PaidDate != nil {
		formatted := bill.PaidDate.Format(dateLayout)
		paidDate = &formatted
	}

	return BillResponse{
		ID:          bill.ID,
		Name:        bill.Name,
		AmountCents: bill.AmountCents,
		Category:    bill.Category,
		DueDate:     bill.DueDate.Format(dateLayout),
		PaidDate:    paidDate,
		Status:      billing.StatusOf(bill, now),
		CreatedAt:   bill.CreatedAt,
		UpdatedAt:   bill.UpdatedAt,
	}
}
