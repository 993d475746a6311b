package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestTokenPairRoundTrip проверяет выпуск и разбор пары токенов.
func TestTokenPairRoundTrip(t *testing.T) {
	manager := NewTokenManager("secret", "bill-tracker", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()
	refreshID := uuid.New()

	pair, err := manager.NewTokenPair(userID, refreshID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	access, err := manager.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected valid access token, got %v", err)
	}
	if access.Subject != userID.String() {
		t.Fatalf("unexpected subject: %s", access.Subject)
	}

	refresh, err := manager.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected valid refresh token, got %v", err)
	}
	if refresh.ID != refreshID.String() {
		t.Fatalf("unexpected refresh token id: %s", refresh.ID)
	}
}

// TestTokenTypeMismatch проверяет отказ при подмене типа токена.
func TestTokenTypeMismatch(t *testing.T) {
	manager := NewTokenManager("secret", "bill-tracker", 15*time.Minute, 24*time.Hour)

	pair, err := manager.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("expected error for refresh token in access slot")
	}

	if _, err := manager.ParseRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for access token in refresh slot")
	}
}

// TestParseRejectsForeignSecret проверяет отказ при чужом секрете.
func TestParseRejectsForeignSecret(t *testing.T) {
	manager := NewTokenManager("secret", "bill-tracker", 15*time.Minute, 24*time.Hour)
	foreign := NewTokenManager("other-secret", "bill-tracker", 15*time.Minute, 24*time.Hour)

	pair, err := foreign.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseAccessToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

// TestTokenHash проверяет хэширование и сравнение refresh-токена.
func TestTokenHash(t *testing.T) {
	hash := HashToken("refresh-token")

	if !CompareTokenHash(hash, "refresh-token") {
		t.Fatal("expected hash to match original token")
	}

	if CompareTokenHash(hash, "another-token") {
		t.Fatal("expected mismatch for another token")
	}
}
