package api

import (
	"net/http"

	"github.com/erazemk/reciklaza/internal/model"
	"github.com/erazemk/reciklaza/internal/store"
)

// StatusesHandler serves the status badge table.
type StatusesHandler struct {
	Store *store.Store
}

type statusInfo struct {
	Status model.Status `json:"status"`
	Label  string       `json:"label"`
	Color  string       `json:"color"`
	Count  int          `json:"count"`
}

// List handles GET /api/statuses.
func (h *StatusesHandler) List(w http.ResponseWriter, r *http.Request) {
	counts := h.Store.CountByStatus()

	out := make([]statusInfo, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		out = append(out, statusInfo{
			Status: s,
			Label:  s.Label(),
			Color:  s.Color(),
			Count:  counts[s],
		})
	}
	jsonResponse(w, http.StatusOK, out)
}
