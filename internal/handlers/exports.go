package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/bill-tracker/internal/auth"
	"example.com/bill-tracker/internal/billing"
)

const timeLayout = time.RFC3339

// ExportJSON выгружает счета пользователя в JSON-файл.
func (h *BillHandler) ExportJSON(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	bills, err := h.Bills.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	now := time.Now().UTC()
	response := make([]BillResponse, 0, len(bills))
	for _, bill := range bills {
		response = append(response, toBillResponse(bill, now))
	}

	filename := "bills-" + now.Format(dateLayout) + ".json"
	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, BillListResponse{Bills: response})
}

// ExportCSV выгружает счета пользователя в CSV-файл.
func (h *BillHandler) ExportCSV(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	bills, err := h.Bills.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	now := time.Now().UTC()

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"id",
		"name",
		"amount_cents",
		"category",
		"due_date",
		"paid_date",
		"status",
		"created_at",
		"updated_at",
	}
	if err := writer.Write(header); err != nil {
		return serverError(c)
	}

	for _, bill := range bills {
		paidDate := ""
		if bill.PaidDate != nil {
			paidDate = bill.PaidDate.Format(dateLayout)
		}

		record := []string{
			bill.ID.String(),
			bill.Name,
			formatInt64(bill.AmountCents),
			string(bill.Category),
			bill.DueDate.Format(dateLayout),
			paidDate,
			string(billing.StatusOf(bill, now)),
			bill.CreatedAt.Format(timeLayout),
			bill.UpdatedAt.Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return serverError(c)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "bills-" + now.Format(dateLayout) + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func formatInt64(value int64) string {
	return strconv.FormatInt(value, 10)
}
