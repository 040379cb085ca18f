package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ooh-ops/internal/core/port"
	"ooh-ops/internal/metrics"
)

// Handler is the inbound HTTP adapter. It holds the campaign usecase,
// a structured logger and the Prometheus instruments, and registers all
// routes on a chi.Router.
type Handler struct {
	svc     port.CampaignUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. Metrics may
// be nil, in which case no instruments are recorded and /metrics is not
// mounted.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: m}
	r := chi.NewRouter()
	r.Use(h.measure)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Get("/{id}/timeline", h.handleGetTimeline)
			r.Patch("/{id}/status", h.handleUpdateStatus)
			r.Post("/{id}/events", h.handleAddEvent)
			r.Post("/{id}/quotations", h.handleLinkQuotation)
		})
		r.Post("/quotations", h.handleCreateQuotation)
		r.Post("/quotations/total", h.handleQuotationTotal)
		r.Post("/proposals/{id}/cost-estimates", h.handleCreateCostEstimate)
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// measure records request count and latency per route pattern.
func (h *Handler) measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		h.metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		h.metrics.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
