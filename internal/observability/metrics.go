package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use through a nil pointer; every method is a no-op then.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	loginAttempts *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	uploadLatency *prometheus.HistogramVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: registry,
		apiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		apiLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_http_requests_inflight",
			Help: "HTTP requests currently being served",
		}),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_login_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_uploads_total",
				Help: "Relayed file uploads by provider and status",
			},
			[]string{"provider", "status"},
		),
		uploadLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_upload_duration_seconds",
				Help:    "Relayed upload duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"provider"},
		),
	}
	registry.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.loginAttempts,
		m.uploads,
		m.uploadLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// IncLogin records one login outcome: success, invalid, throttled or error.
func (m *Metrics) IncLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveUpload(provider, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(provider, status).Inc()
	m.uploadLatency.WithLabelValues(provider).Observe(dur.Seconds())
}
