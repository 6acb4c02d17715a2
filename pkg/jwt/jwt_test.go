package jwt

import (
	"testing"
	"time"

	"opsboard/backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-at-least-16-chars",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 168 * time.Hour,
	})
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("JTI should not be empty")
	}
}

func TestManager_RefreshTokenRememberMe(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-2", "clerk", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
	if !claims.RememberMe {
		t.Error("RememberMe should be true")
	}
	// remember-me tokens carry the longer TTL
	if claims.ExpiresAt.Time.Before(time.Now().Add(100 * time.Hour)) {
		t.Error("remember-me refresh token should expire well past 100h")
	}
}

func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-16-chars-x",
		AccessTokenTTL: time.Minute,
	})

	token, err := m.GenerateAccessToken("user-3", "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected error parsing token with wrong secret")
	}
}

func TestManager_ParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	if _, err := m.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
