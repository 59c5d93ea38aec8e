package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors for the lint daemon.
type Metrics struct {
	registry          *prometheus.Registry
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	documentsLinted   *prometheus.CounterVec
	problemsTotal     prometheus.Counter
	draftsStoredTotal prometheus.Counter
	rateLimitedTotal  prometheus.Counter
	draftsActive      prometheus.Gauge
}

// New creates and registers the collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "livectl_http_requests_total",
		Help: "Total number of HTTP requests by route and status code",
	}, []string{"method", "route", "status"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "livectl_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	documentsLinted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "livectl_documents_linted_total",
		Help: "Documents linted by outcome (valid, invalid, malformed)",
	}, []string{"result"})
	problemsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "livectl_lint_problems_total",
		Help: "Total number of field problems reported by lint",
	})
	draftsStoredTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "livectl_drafts_stored_total",
		Help: "Total number of drafts stored",
	})
	rateLimitedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "livectl_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
	draftsActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "livectl_drafts_active",
		Help: "Number of drafts currently stored",
	})

	registry.MustRegister(
		requestsTotal,
		requestDuration,
		documentsLinted,
		problemsTotal,
		draftsStoredTotal,
		rateLimitedTotal,
		draftsActive,
	)

	return &Metrics{
		registry:          registry,
		requestsTotal:     requestsTotal,
		requestDuration:   requestDuration,
		documentsLinted:   documentsLinted,
		problemsTotal:     problemsTotal,
		draftsStoredTotal: draftsStoredTotal,
		rateLimitedTotal:  rateLimitedTotal,
		draftsActive:      draftsActive,
	}
}

// Lint outcomes.
const (
	ResultValid     = "valid"
	ResultInvalid   = "invalid"
	ResultMalformed = "malformed"
)

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncLinted counts one linted document and its problems.
func (m *Metrics) IncLinted(result string, problems int) {
	m.documentsLinted.WithLabelValues(result).Inc()
	if problems > 0 {
		m.problemsTotal.Add(float64(problems))
	}
}

// IncDraftsStored increments the stored drafts counter.
func (m *Metrics) IncDraftsStored() {
	m.draftsStoredTotal.Inc()
}

// IncRateLimited increments the rate limited counter.
func (m *Metrics) IncRateLimited() {
	m.rateLimitedTotal.Inc()
}

// SetDraftsActive sets the active drafts gauge.
func (m *Metrics) SetDraftsActive(n int) {
	m.draftsActive.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
