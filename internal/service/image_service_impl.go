package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/cosmatattoo/backend/internal/repository"
	"github.com/cosmatattoo/backend/internal/storage"
)

// imageServiceImpl is the production implementation of ImageService.
type imageServiceImpl struct {
	repo  repository.ImageRepository
	store storage.Storage
}

// NewImageService creates an ImageService over the given repository and blob store.
func NewImageService(repo repository.ImageRepository, store storage.Storage) ImageService {
	return &imageServiceImpl{repo: repo, store: store}
}

func (s *imageServiceImpl) Create(ctx context.Context, img *model.Image, data io.Reader, originalName, contentType string) error {
	key := storage.NewKey(originalName)
	url, err := s.store.Save(ctx, key, data, contentType)
	if err != nil {
		return err
	}

	img.ImageURL = url
	img.PublicID = key
	if err := s.repo.Save(ctx, img); err != nil {
		if cleanupErr := s.store.Delete(ctx, key); cleanupErr != nil {
			slog.Error("orphaned blob: cleanup after failed insert also failed",
				"key", key, "error", cleanupErr)
		}
		return err
	}
	return nil
}

func (s *imageServiceImpl) List(ctx context.Context, category string) ([]*model.Image, error) {
	if !model.ValidCategory(category) {
		category = ""
	}
	return s.repo.List(ctx, category)
}

func (s *imageServiceImpl) Delete(ctx context.Context, id string) error {
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if img.PublicID != "" {
		if err := s.store.Delete(ctx, img.PublicID); err != nil {
			slog.Warn("image blob delete failed, removing row anyway",
				"id", id, "key", img.PublicID, "error", err)
		}
	}

	return s.repo.Delete(ctx, id)
}
