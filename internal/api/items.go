package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/erazemk/reciklaza/internal/filter"
	"github.com/erazemk/reciklaza/internal/imaging"
	"github.com/erazemk/reciklaza/internal/model"
	"github.com/erazemk/reciklaza/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	Store *store.Store
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	var c filter.Criteria
	if raw := r.URL.Query().Get("status"); raw != "" && raw != "all" {
		status, err := model.ParseStatus(raw)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid status")
			return
		}
		c.Status = status
	}
	c.Search = r.URL.Query().Get("q")

	jsonResponse(w, http.StatusOK, filter.Items(h.Store.Items(), c))
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.Create(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Store.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PATCH /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ItemPatch
	if err := decodeJSONStrict(r, &patch); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			jsonError(w, http.StatusBadRequest, err.Error()+" (id, qrCode and timestamp are fixed; change status with PUT /api/items/{id}/status)")
			return
		}
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := r.PathValue("id")
	found, err := h.Store.Update(r.Context(), id, patch)
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.writeItem(w, id)
}

// UpdateStatus handles PUT /api/items/{id}/status.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := r.PathValue("id")
	found, err := h.Store.UpdateStatus(r.Context(), id, model.Status(req.Status))
	if errors.Is(err, store.ErrInvalidStatus) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.writeItem(w, id)
}

// GenerateDescription handles POST /api/items/{id}/description.
func (h *ItemsHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	desc, found, err := h.Store.GenerateDescription(r.Context(), r.PathValue("id"))
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"description": desc})
}

// UploadImage handles PUT /api/items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.Store.Get(id); !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	// Leave room for the multipart envelope around the file.
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+1<<20)

	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := h.Store.AddImage(r.Context(), id, photo.DataURL())
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.writeItem(w, id)
}

// QR handles GET /api/items/{id}/qr by redirecting to the QR image.
func (h *ItemsHandler) QR(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Store.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	http.Redirect(w, r, item.QRCode, http.StatusFound)
}

// Delete handles DELETE /api/items/{id}. Deleting a missing item succeeds.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Store.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

func (h *ItemsHandler) writeItem(w http.ResponseWriter, id string) {
	item, ok := h.Store.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// writeStoreError maps store errors to responses. A failed save leaves the
// change in memory but is still reported as a server error.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotPersisted) {
		jsonError(w, http.StatusInternalServerError, "failed to save items")
		return
	}
	jsonError(w, http.StatusInternalServerError, "internal error")
}
