package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
)

// ImageRepository is the persistence interface for portfolio images.
// Rows are never updated in place; the only mutation path is delete+recreate.
type ImageRepository interface {
	Save(ctx context.Context, img *model.Image) error
	// List returns images newest first. A non-empty category narrows the
	// result to exact matches.
	List(ctx context.Context, category string) ([]*model.Image, error)
	FindByID(ctx context.Context, id string) (*model.Image, error)
	Delete(ctx context.Context, id string) error
}
