package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	subject := uuid.NewString()

	token, err := manager.Issue(subject)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got != subject {
		t.Errorf("expected subject %s, got %s", subject, got)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	// Negative TTL issues a token that is already expired.
	manager := NewTokenManager("test-secret", -time.Hour)

	token, err := manager.Issue(uuid.NewString())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := manager.Verify(token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue(uuid.NewString())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue(uuid.NewString())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	flipped := byte('A')
	if parts[2][0] == flipped {
		flipped = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(flipped) + parts[2][1:]

	if _, err := manager.Verify(tampered); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := manager.Verify(tok); err == nil {
			t.Errorf("expected error for token %q", tok)
		}
	}
}
