package service

import (
	"context"
	"io"

	"github.com/cosmatattoo/backend/internal/model"
)

// ImageService is the business logic for portfolio images, including the
// coordination between blob storage and the metadata row. The two writes
// are not transactional; ordering carries the consistency guarantee:
// blob first on create, row last on delete.
type ImageService interface {
	// Create writes the blob, then inserts the metadata row. A storage
	// failure aborts before any row is written. If the insert fails after
	// the blob landed, the fresh blob is deleted best-effort; a failure of
	// that cleanup is logged and the blob is orphaned.
	Create(ctx context.Context, img *model.Image, data io.Reader, originalName, contentType string) error

	// List returns images newest first. A category outside the known set
	// (or empty, or "all") means no filter.
	List(ctx context.Context, category string) ([]*model.Image, error)

	// Delete looks up the row (repository.ErrNotFound if absent, in which
	// case no blob operation happens), deletes the blob best-effort, then
	// deletes the row. A missing blob never blocks the row delete.
	Delete(ctx context.Context, id string) error
}
