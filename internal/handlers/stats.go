package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/bill-tracker/internal/auth"
	"example.com/bill-tracker/internal/models"
	"example.com/bill-tracker/internal/repository"
)

type StatsHandler struct {
	Stats *repository.StatsRepository
}

// NewStatsHandler создает обработчик отчетов.
func NewStatsHandler(stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

type OverviewResponse struct {
	TotalCount      int   `json:"total_count"`
	PaidCount       int   `json:"paid_count"`
	OverdueCount    int   `json:"overdue_count"`
	PendingCount    int   `json:"pending_count"`
	PaidCents       int64 `json:"paid_cents"`
	OverdueCents    int64 `json:"overdue_cents"`
	PendingCents    int64 `json:"pending_cents"`
	GrandTotalCents int64 `json:"grand_total_cents"`
}

type CategorySpendingResponse struct {
	Categories []CategorySpendingItem `json:"categories"`
}

type CategorySpendingItem struct {
	Category   models.BillCategory `json:"category"`
	BillCount  int                 `json:"bill_count"`
	TotalCents int64               `json:"total_cents"`
	PaidCents  int64               `json:"paid_cents"`
}

// Overview возвращает сводку по счетам: количество и суммы на каждый статус.
func (h *StatsHandler) Overview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	overview, err := h.Stats.Overview(c.Request().Context(), userID, today)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, OverviewResponse{
		TotalCount:      overview.TotalCount,
		PaidCount:       overview.PaidCount,
		OverdueCount:    overview.OverdueCount,
		PendingCount:    overview.PendingCount,
		PaidCents:       overview.PaidCents,
		OverdueCents:    overview.OverdueCents,
		PendingCents:    overview.PendingCents,
		GrandTotalCents: overview.PaidCents + overview.OverdueCents + overview.PendingCents,
	})
}

// SpendingByCategory возвращает суммы счетов по категориям.
func (h *StatsHandler) SpendingByCategory(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.Stats.SpendingByCategory(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	categories := make([]CategorySpendingItem, 0, len(items))
	for _, item := range items {
		categories = append(categories, CategorySpendingItem{
			Category:   item.Category,
			BillCount:  item.BillCount,
			TotalCents: item.TotalCents,
			PaidCents:  item.PaidCents,
		})
	}

	return c.JSON(http.StatusOK, CategorySpendingResponse{Categories: categories})
}
