package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/bill-tracker/internal/ai"
	"example.com/bill-tracker/internal/auth"
)

type AIHandler struct {
	Service *ai.Service
}

// NewAIHandler создает обработчик AI-пояснений.
func NewAIHandler(service *ai.Service) *AIHandler {
	return &AIHandler{Service: service}
}

type ExplainRequest struct {
	AmountsCents []int64 `json:"amounts_cents" validate:"required,min=1"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

// Explain просит AI-ассистента прокомментировать переданные траты.
func (h *AIHandler) Explain(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req ExplainRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	for _, amount := range req.AmountsCents {
		if amount < 0 {
			return badRequest(c, "amounts_cents must not be negative")
		}
	}

	explanation, err := h.Service.ExplainExpenses(c.Request().Context(), req.AmountsCents)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "ai assistant is unavailable"})
	}

	return c.JSON(http.StatusOK, ExplainResponse{Explanation: explanation})
}
