package service

import (
	"context"
	"io"

	"github.com/cosmatattoo/backend/internal/model"
)

// DrawingService is the business logic for the drawing gallery. It follows
// the same blob/row coordination as ImageService.
type DrawingService interface {
	Create(ctx context.Context, d *model.Drawing, data io.Reader, originalName, contentType string) error
	List(ctx context.Context) ([]*model.Drawing, error)
	Delete(ctx context.Context, id string) error
}
