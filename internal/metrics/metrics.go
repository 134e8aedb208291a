// Package metrics exposes Prometheus counters for view resolution.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mirofish"

// Metrics holds the service collectors on a dedicated registry so that
// multiple instances, as in tests, never collide on the global registry.
type Metrics struct {
	registry  *prometheus.Registry
	resolved  *prometheus.CounterVec
	unmatched prometheus.Counter
}

// New creates and registers the view metrics along with the standard Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "views",
				Name:      "resolved_total",
				Help:      "Total number of requests resolved to a view, by route name",
			},
			[]string{"route"},
		),
		unmatched: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "views",
				Name:      "unmatched_total",
				Help:      "Total number of requests that matched no view",
			},
		),
	}

	m.registry.MustRegister(
		m.resolved,
		m.unmatched,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ViewResolved records a request resolved to the named route.
func (m *Metrics) ViewResolved(route string) {
	m.resolved.WithLabelValues(route).Inc()
}

// ViewUnmatched records a request that matched no route.
func (m *Metrics) ViewUnmatched() {
	m.unmatched.Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
