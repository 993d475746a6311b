package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeClient struct {
	response string
	err      error
	messages []Message
}

func (f *fakeClient) Chat(ctx context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.response, f.err
}

// TestFormatReais проверяет форматирование центов в реалы.
func TestFormatReais(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{12345, "123,45"},
		{-990, "-9,90"},
	}

	for _, tc := range cases {
		if got := formatReais(tc.cents); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}

// TestBuildExplainPrompt проверяет, что все суммы попадают в запрос.
func TestBuildExplainPrompt(t *testing.T) {
	prompt := buildExplainPrompt([]int64{10050, 2500})

	if !strings.Contains(prompt, "100,50") {
		t.Fatalf("expected first amount in prompt: %s", prompt)
	}
	if !strings.Contains(prompt, "25,00") {
		t.Fatalf("expected second amount in prompt: %s", prompt)
	}
	if !strings.Contains(prompt, "Calcule o total") {
		t.Fatalf("expected instructions in prompt: %s", prompt)
	}
}

// TestExplainExpenses проверяет успешный сценарий с системной инструкцией.
func TestExplainExpenses(t *testing.T) {
	client := &fakeClient{response: "  Total: R$ 125,50  "}
	service := NewService(client)

	got, err := service.ExplainExpenses(context.Background(), []int64{10050, 2500})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "Total: R$ 125,50" {
		t.Fatalf("unexpected explanation: %s", got)
	}

	if len(client.messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(client.messages))
	}
	if client.messages[0].Role != "system" {
		t.Fatalf("expected system role first, got %s", client.messages[0].Role)
	}
}

// TestExplainExpensesErrors проверяет пустой ввод и отказ клиента.
func TestExplainExpensesErrors(t *testing.T) {
	service := NewService(&fakeClient{})

	if _, err := service.ExplainExpenses(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty amounts")
	}

	failing := NewService(&fakeClient{err: errors.New("boom")})
	if _, err := failing.ExplainExpenses(context.Background(), []int64{100}); err == nil {
		t.Fatal("expected client error to propagate")
	}

	blank := NewService(&fakeClient{response: "   "})
	if _, err := blank.ExplainExpenses(context.Background(), []int64{100}); err == nil {
		t.Fatal("expected error for blank response")
	}
}
