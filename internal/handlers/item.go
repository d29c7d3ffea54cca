package handlers

import (
	"GopherMarket/internal/config"
	"GopherMarket/internal/model"
	"GopherMarket/internal/service"
	"GopherMarket/internal/storage"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает каталог товаров.
type ItemHandler struct {
	Service *service.ItemService
	Blobs   storage.BlobStore
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(s *service.ItemService, blobs storage.BlobStore, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Service: s, Blobs: blobs, Logger: logger, Config: cfg}
}

// DeleteResponse — ответ DELETE /items/{id}.
type DeleteResponse struct {
	Message string      `json:"message"`
	Item    *model.Item `json:"item"`
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List — GET /items (публичный).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get — GET /items/{id} (публичный).
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Not found")
		return
	}
	item, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Not found")
			return
		}
		h.Logger.Errorw("Get: service error", "item_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// parseItemForm разбирает multipart-тело item-запроса: поля title и
// description, опциональный файл image (сохраняется в хранилище сразу).
func (h *ItemHandler) parseItemForm(w http.ResponseWriter, r *http.Request) (title, description, image *string, ok bool) {
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("item form: invalid multipart form", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid multipart form")
		return nil, nil, nil, false
	}

	if v := r.FormValue("title"); v != "" {
		title = &v
	}
	if v := r.FormValue("description"); v != "" {
		description = &v
	}
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		path, saveErr := h.Blobs.Save(file, header.Filename)
		if saveErr != nil {
			h.Logger.Errorw("item form: failed to save image", "error", saveErr)
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return nil, nil, nil, false
		}
		image = &path
	}
	return title, description, image, true
}

// Create — POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	title, description, image, ok := h.parseItemForm(w, r)
	if !ok {
		return
	}
	if title == nil {
		writeMessage(w, http.StatusBadRequest, "title is required")
		return
	}

	item, err := h.Service.Create(r.Context(), *title, description, image)
	if err != nil {
		h.Logger.Errorw("Create: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update — PUT /items/{id}. Непереданные поля не трогаются; картинка
// заменяется только если пришёл новый файл.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	title, description, image, ok := h.parseItemForm(w, r)
	if !ok {
		return
	}

	item, err := h.Service.Update(r.Context(), id, title, description, image)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Item not found")
			return
		}
		h.Logger.Errorw("Update: service error", "item_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete — DELETE /items/{id}. Файл картинки убирается best-effort уже
// после фиксации удаления записи.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	item, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Item not found")
			return
		}
		h.Logger.Errorw("Delete: service error", "item_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Message: "Deleted", Item: item})
}
