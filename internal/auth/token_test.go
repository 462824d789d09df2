package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, userID := range []int64{1, 42, 9000000000} {
		token, err := issuer.Issue(userID)
		if err != nil {
			t.Fatalf("Issue failed for user %d: %v", userID, err)
		}

		got, err := issuer.Verify(token)
		if err != nil {
			t.Fatalf("Verify failed for user %d: %v", userID, err)
		}
		if got != userID {
			t.Errorf("Expected user id %d, got %d", userID, got)
		}
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	// A negative TTL issues a token that is already past its expiry
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = other.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_Tampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = issuer.Verify(tampered)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := issuer.Verify(raw); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Expected ErrTokenInvalid for %q, got %v", raw, err)
		}
	}
}
