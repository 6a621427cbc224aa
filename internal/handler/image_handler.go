package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/cosmatattoo/backend/internal/repository"
	"github.com/cosmatattoo/backend/internal/service"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageHandler handles the public portfolio listing and admin upload/delete.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates an ImageHandler with the given service.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// List handles GET /api/images?category=. Public; an unknown or absent
// category means "all".
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	images, err := h.imageService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		slog.Error("image list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if images == nil {
		images = []*model.Image{}
	}
	_ = json.NewEncoder(w).Encode(map[string][]*model.Image{"images": images})
}

// Create handles POST /api/images (admin only, multipart form with
// file, title, description?, category). The blob is written before the
// metadata row; a storage failure aborts the whole operation.
func (h *ImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_required"})
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "title_required"})
		return
	}
	category := r.FormValue("category")
	if category == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "category_required"})
		return
	}
	if !model.ValidCategory(category) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_category"})
		return
	}
	if header.Size > maxUploadSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}
	ct := header.Header.Get("Content-Type")
	if !allowedContentTypes[ct] {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_content_type"})
		return
	}

	img := &model.Image{
		Title:       title,
		Description: r.FormValue("description"),
		Category:    category,
	}
	if err := h.imageService.Create(r.Context(), img, file, header.Filename, ct); err != nil {
		slog.Error("image create failed", "title", title, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]*model.Image{"image": img})
}

// Delete handles DELETE /api/images?id= (admin only). The blob delete is
// best-effort; the metadata row is removed regardless.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	if err := h.imageService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("image delete failed", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
