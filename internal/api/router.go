package api

import (
	"net/http"

	"github.com/erazemk/reciklaza/internal/metrics"
	"github.com/erazemk/reciklaza/internal/notify"
	"github.com/erazemk/reciklaza/internal/store"
)

// NewRouter creates the API router with all endpoints registered. notices
// and m may be nil, in which case their endpoints are not registered.
func NewRouter(s *store.Store, notices *notify.Recorder, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Store: s}
	statusesHandler := &StatusesHandler{Store: s}

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PATCH /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)
	mux.HandleFunc("PUT /api/items/{id}/status", itemsHandler.UpdateStatus)
	mux.HandleFunc("POST /api/items/{id}/description", itemsHandler.GenerateDescription)
	mux.HandleFunc("PUT /api/items/{id}/image", itemsHandler.UploadImage)
	mux.HandleFunc("GET /api/items/{id}/qr", itemsHandler.QR)

	// Status badges.
	mux.HandleFunc("GET /api/statuses", statusesHandler.List)

	if notices != nil {
		noticesHandler := &NoticesHandler{Recorder: notices}
		mux.HandleFunc("GET /api/notices", noticesHandler.List)
	}

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	return mux
}
