package api

import (
	"net/http"

	"github.com/erazemk/reciklaza/internal/notify"
)

// NoticesHandler serves recently emitted notices.
type NoticesHandler struct {
	Recorder *notify.Recorder
}

// List handles GET /api/notices.
func (h *NoticesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Recorder.Recent())
}
