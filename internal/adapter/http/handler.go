package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vast-core/internal/core/port"
)

// maxBatchDocuments caps the number of documents in one batch request.
const maxBatchDocuments = 64

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a DocumentUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.DocumentUseCase
	logger  *slog.Logger
	router  chi.Router
	maxBody int64
}

// NewHandler creates a handler with all routes configured. Request bodies
// carrying a single document are capped at maxBody bytes. Metrics collected
// by gatherer are exposed on /metrics.
func NewHandler(svc port.DocumentUseCase, gatherer prometheus.Gatherer, maxBody int64, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, maxBody: maxBody}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/vast/parse", h.handleParse)
		r.Post("/vast/documents", h.handleIngest)
		r.Post("/vast/documents/batch", h.handleIngestBatch)
		r.Get("/vast/documents/{id}", h.handleGetDocument)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
