package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	client Client
}

// NewService создает сервис работы с AI-клиентом.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// ExplainExpenses просит AI подвести итог по тратам: посчитать сумму,
// прокомментировать влияние и дать короткий совет по экономии.
func (s *Service) ExplainExpenses(ctx context.Context, amountsCents []int64) (string, error) {
	if len(amountsCents) == 0 {
		return "", errors.New("no amounts to explain")
	}

	messages := []Message{
		{Role: "system", Content: "Atue como um especialista financeiro. Responda em Português do Brasil, de forma clara e profissional."},
		{Role: "user", Content: buildExplainPrompt(amountsCents)},
	}

	content, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	explanation := strings.TrimSpace(content)
	if explanation == "" {
		return "", errors.New("empty ai response")
	}

	return explanation, nil
}

func buildExplainPrompt(amountsCents []int64) string {
	values := make([]string, 0, len(amountsCents))
	for _, cents := range amountsCents {
		values = append(values, formatReais(cents))
	}

	return fmt.Sprintf(`Analise os seguintes valores de gastos (em reais): %s.
1. Calcule o total.
2. Faça um breve comentário sobre o impacto desses gastos.
3. Dê uma dica curta e prática de economia.`,
		strings.Join(values, ", "))
}

func formatReais(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}
