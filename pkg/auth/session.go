package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Identity is the claim set embedded in a session proof. The proof is
// trusted for its whole validity window: role changes only take effect
// once the user authenticates again.
type Identity struct {
	UserID    string    `json:"uid"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"exp"`
}

// SessionDuration is the validity window of an issued session proof.
const SessionDuration = 7 * 24 * time.Hour

var (
	// ErrUnauthenticated is returned when no valid session proof is present.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the session's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")
)

// CreateSessionToken signs an identity into an opaque session token:
// base64url(JSON claims) + "." + hex(HMAC-SHA256 over the payload).
func CreateSessionToken(id Identity, secret []byte) (string, error) {
	payload, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString(payload) + "." + sig, nil
}

// VerifySessionToken checks the signature and expiry of a session token and
// returns the embedded identity. The identity is not re-fetched from any
// store; the token alone is the proof.
func VerifySessionToken(token string, secret []byte) (Identity, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return Identity{}, ErrUnauthenticated
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return Identity{}, ErrUnauthenticated
	}

	var id Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		return Identity{}, ErrUnauthenticated
	}
	if time.Now().After(id.ExpiresAt) {
		return Identity{}, ErrUnauthenticated
	}
	return id, nil
}

// RequireRole returns ErrForbidden unless the identity holds the given role.
// Every mutating handler calls this before touching any store.
func RequireRole(id Identity, role string) error {
	if id.Role != role {
		return ErrForbidden
	}
	return nil
}

const sessionCookieName = "cosma_session"
const minSecretLen = 32

// SessionCookieName returns the name of the session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the HMAC key from the configured secret,
// zero-padding to a 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
