package service

import (
	"context"
	"errors"

	"github.com/cosmatattoo/backend/internal/model"
)

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email_taken")
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a USER account. The returned user carries no
	// password hash in its JSON form.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Authenticate verifies email+password against the stored hash using a
	// case-sensitive exact email match.
	Authenticate(ctx context.Context, email, password string) (*model.User, error)

	// EnsureAdmin creates the default ADMIN account if no admin exists yet.
	// Returns the admin and whether it was created by this call.
	EnsureAdmin(ctx context.Context, email, password, name string) (*model.User, bool, error)
}
