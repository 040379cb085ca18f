package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the service.
type Metrics struct {
	// HTTP instruments, recorded by the router middleware.
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Domain counters.
	StatusTransitionsTotal *prometheus.CounterVec
	QuotationsCreatedTotal prometheus.Counter
	CostEstimatesTotal     prometheus.Counter
	TimelineMergeFailures  prometheus.Counter

	registry *prometheus.Registry
}

// New creates a Metrics instance with every instrument registered on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oohops_http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oohops_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		StatusTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oohops_status_transitions_total",
				Help: "Campaign status transitions by target status",
			},
			[]string{"status"},
		),
		QuotationsCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "oohops_quotations_created_total",
				Help: "Quotations created",
			},
		),
		CostEstimatesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "oohops_cost_estimates_created_total",
				Help: "Cost estimates created",
			},
		),
		TimelineMergeFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "oohops_timeline_merge_failures_total",
				Help: "Timeline reads degraded to an empty result",
			},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.StatusTransitionsTotal,
		m.QuotationsCreatedTotal,
		m.CostEstimatesTotal,
		m.TimelineMergeFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
