package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/cosmatattoo/backend/internal/repository"
	"github.com/cosmatattoo/backend/internal/storage"
)

// drawingServiceImpl is the production implementation of DrawingService.
type drawingServiceImpl struct {
	repo  repository.DrawingRepository
	store storage.Storage
}

// NewDrawingService creates a DrawingService over the given repository and blob store.
func NewDrawingService(repo repository.DrawingRepository, store storage.Storage) DrawingService {
	return &drawingServiceImpl{repo: repo, store: store}
}

func (s *drawingServiceImpl) Create(ctx context.Context, d *model.Drawing, data io.Reader, originalName, contentType string) error {
	key := storage.NewKey(originalName)
	url, err := s.store.Save(ctx, key, data, contentType)
	if err != nil {
		return err
	}

	d.ImageURL = url
	d.PublicID = key
	if err := s.repo.Save(ctx, d); err != nil {
		if cleanupErr := s.store.Delete(ctx, key); cleanupErr != nil {
			slog.Error("orphaned blob: cleanup after failed insert also failed",
				"key", key, "error", cleanupErr)
		}
		return err
	}
	return nil
}

func (s *drawingServiceImpl) List(ctx context.Context) ([]*model.Drawing, error) {
	return s.repo.List(ctx)
}

func (s *drawingServiceImpl) Delete(ctx context.Context, id string) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if d.PublicID != "" {
		if err := s.store.Delete(ctx, d.PublicID); err != nil {
			slog.Warn("drawing blob delete failed, removing row anyway",
				"id", id, "key", d.PublicID, "error", err)
		}
	}

	return s.repo.Delete(ctx, id)
}
