package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Issue(map[string]any{"email": "a@b.com", "name": "A"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if until := time.Until(exp); until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expiry not ~1h out: %v", until)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got := EmailClaim(claims); got != "a@b.com" {
		t.Fatalf("email claim = %q, want a@b.com", got)
	}
	if claims["name"] != "A" {
		t.Fatalf("extra claim lost: %v", claims["name"])
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Issue(map[string]any{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err := m.Verify(tampered); err == nil {
		t.Fatal("tampered token verified")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)
	token, _, err := other.Issue(map[string]any{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("foreign token verified")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.Issue(map[string]any{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestEmailClaimMissing(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Issue(map[string]any{"sub": "nobody"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got := EmailClaim(claims); got != "" {
		t.Fatalf("email claim = %q, want empty", got)
	}
}
