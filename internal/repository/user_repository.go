package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
)

// DB exposes connection liveness for the health endpoint.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository is the persistence interface for user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByEmail performs a case-sensitive exact match.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindAdmin returns any user holding the ADMIN role, ErrNotFound if none.
	FindAdmin(ctx context.Context) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
