package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
)

// DrawingRepository is the persistence interface for drawing gallery entries.
type DrawingRepository interface {
	Save(ctx context.Context, d *model.Drawing) error
	List(ctx context.Context) ([]*model.Drawing, error)
	FindByID(ctx context.Context, id string) (*model.Drawing, error)
	Delete(ctx context.Context, id string) error
}
