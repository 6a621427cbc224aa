package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testSecret = SessionSecretBytes("test-secret")

func testIdentity() Identity {
	return Identity{
		UserID:    "user-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      "ADMIN",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	id := testIdentity()
	token, err := CreateSessionToken(id, testSecret)
	if err != nil {
		t.Fatalf("CreateSessionToken: %v", err)
	}

	got, err := VerifySessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifySessionToken: %v", err)
	}
	if got.UserID != id.UserID || got.Email != id.Email || got.Role != id.Role || got.Name != id.Name {
		t.Errorf("identity mismatch: got %+v, want %+v", got, id)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	id := testIdentity()
	id.ExpiresAt = time.Now().Add(-time.Minute)
	token, err := CreateSessionToken(id, testSecret)
	if err != nil {
		t.Fatalf("CreateSessionToken: %v", err)
	}

	if _, err := VerifySessionToken(token, testSecret); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestSessionToken_TamperedPayload(t *testing.T) {
	token, err := CreateSessionToken(testIdentity(), testSecret)
	if err != nil {
		t.Fatalf("CreateSessionToken: %v", err)
	}

	// Forge a token that claims a different payload under the old signature.
	parts := strings.SplitN(token, ".", 2)
	forged, _ := CreateSessionToken(Identity{UserID: "attacker", Role: "ADMIN", ExpiresAt: time.Now().Add(time.Hour)}, testSecret)
	forgedPayload := strings.SplitN(forged, ".", 2)[0]

	if _, err := VerifySessionToken(forgedPayload+"."+parts[1], testSecret); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated for tampered payload, got %v", err)
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := CreateSessionToken(testIdentity(), testSecret)
	if err != nil {
		t.Fatalf("CreateSessionToken: %v", err)
	}

	other := SessionSecretBytes("another-secret")
	if _, err := VerifySessionToken(token, other); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated with wrong secret, got %v", err)
	}
}

func TestSessionToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "no-dot", "not!base64.sig", "a.b.c"} {
		if _, err := VerifySessionToken(token, testSecret); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("token %q: expected ErrUnauthenticated, got %v", token, err)
		}
	}
}

func TestRequireRole(t *testing.T) {
	admin := Identity{UserID: "u1", Role: "ADMIN"}
	user := Identity{UserID: "u2", Role: "USER"}

	if err := RequireRole(admin, "ADMIN"); err != nil {
		t.Errorf("admin should pass ADMIN check, got %v", err)
	}
	if err := RequireRole(user, "ADMIN"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for USER, got %v", err)
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	if got := len(SessionSecretBytes("short")); got != 32 {
		t.Errorf("expected 32-byte key for short secret, got %d", got)
	}
	long := strings.Repeat("x", 48)
	if got := len(SessionSecretBytes(long)); got != 48 {
		t.Errorf("expected long secret to pass through, got %d bytes", got)
	}
}
