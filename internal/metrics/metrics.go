// Package metrics owns the site's Prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all site metrics
type Registry struct {
	registry *prometheus.Registry

	// RequestDuration observes HTTP handling time by route pattern
	RequestDuration *prometheus.HistogramVec

	// PageRenders counts full page renders by embed mode and motion preference
	PageRenders *prometheus.CounterVec

	// Panics counts recovered handler panics
	Panics prometheus.Counter
}

// NewRegistry creates a private registry with the site metrics and the
// standard process and Go runtime collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		registry: reg,
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "g1site_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"route", "method", "status"},
		),
		PageRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "g1site_page_renders_total",
				Help: "Total number of page renders",
			},
			[]string{"mode", "reduced_motion"},
		),
		Panics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "g1site_http_panics_total",
				Help: "Total number of recovered handler panics",
			},
		),
	}

	reg.MustRegister(
		r.RequestDuration,
		r.PageRenders,
		r.Panics,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Gatherer exposes the underlying registry for tests and exporters
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
