package service

import (
	"context"
	"errors"

	"github.com/cosmatattoo/backend/internal/model"
)

// ErrInvalidStatus is returned when a status update names a value outside
// UNREAD/READ/ARCHIVED.
var ErrInvalidStatus = errors.New("invalid_status")

// MessageService is the business logic for contact messages.
type MessageService interface {
	// Submit stores a new message. Status is forced to UNREAD regardless of
	// input; msg.UserID, when set, ties the message to the logged-in sender.
	Submit(ctx context.Context, msg *model.Message) error

	// List returns every message, newest first. Listing is admin-only and
	// the handler enforces that before calling here.
	List(ctx context.Context) ([]*model.Message, error)

	// UpdateStatus moves a message to any of the three statuses. There are
	// no forbidden transitions; an ARCHIVED message can go back to UNREAD.
	UpdateStatus(ctx context.Context, id, status string) (*model.Message, error)

	Delete(ctx context.Context, id string) error
}
