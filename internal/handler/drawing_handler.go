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

// DrawingHandler handles the public drawing gallery and admin upload/delete.
type DrawingHandler struct {
	drawingService service.DrawingService
}

// NewDrawingHandler creates a DrawingHandler with the given service.
func NewDrawingHandler(drawingService service.DrawingService) *DrawingHandler {
	return &DrawingHandler{drawingService: drawingService}
}

// List handles GET /api/drawings. Public, unfiltered.
func (h *DrawingHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	drawings, err := h.drawingService.List(r.Context())
	if err != nil {
		slog.Error("drawing list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if drawings == nil {
		drawings = []*model.Drawing{}
	}
	_ = json.NewEncoder(w).Encode(map[string][]*model.Drawing{"drawings": drawings})
}

// Create handles POST /api/drawings (admin only, multipart form with
// file, title, description?).
func (h *DrawingHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	d := &model.Drawing{
		Title:       title,
		Description: r.FormValue("description"),
	}
	if err := h.drawingService.Create(r.Context(), d, file, header.Filename, ct); err != nil {
		slog.Error("drawing create failed", "title", title, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]*model.Drawing{"drawing": d})
}

// Delete handles DELETE /api/drawings?id= (admin only).
func (h *DrawingHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.drawingService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("drawing delete failed", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
