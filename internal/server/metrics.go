package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the API. Each Server owns its
// own registry so that several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// RequestDuration tracks the duration of HTTP requests
	RequestDuration *prometheus.HistogramVec
	// RequestsTotal counts HTTP requests by route and status
	RequestsTotal *prometheus.CounterVec
	// InFlight tracks the number of requests being served
	InFlight prometheus.Gauge
	// CreationsTotal counts creations by content type and outcome
	CreationsTotal *prometheus.CounterVec
	// QualityScore observes the quality score of successful creations
	QualityScore prometheus.Histogram
	// RateLimited counts requests rejected by the rate limiter
	RateLimited prometheus.Counter
}

// NewMetrics creates and registers the API collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jinmai_http_request_duration_seconds",
				Help:    "Time spent serving HTTP requests",
				Buckets: []float64{0.005, 0.05, 0.25, 1, 1.5, 2, 2.5, 3, 5},
			},
			[]string{"route"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jinmai_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "jinmai_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		CreationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jinmai_creations_total",
				Help: "Content creations by content type and outcome",
			},
			[]string{"type", "outcome"},
		),
		QualityScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jinmai_creation_quality_score",
				Help:    "Quality score of completed creations",
				Buckets: prometheus.LinearBuckets(60, 5, 9),
			},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "jinmai_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestsTotal,
		m.InFlight,
		m.CreationsTotal,
		m.QualityScore,
		m.RateLimited,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
