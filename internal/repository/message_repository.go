package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
)

// MessageRepository is the persistence interface for contact messages.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
	// List returns messages newest first, with the sender's user summary
	// joined in when the message was submitted by a logged-in user.
	List(ctx context.Context) ([]*model.Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Message, error)
	Delete(ctx context.Context, id string) error
}
