// ABOUTME: Prometheus instrumentation for routing and backend calls
// ABOUTME: Uses a private registry so tests and multiple servers do not collide
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for routed requests
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeUnrouted = "unrouted"
)

// Metrics holds the router's collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	registry        *prom.Registry
	requests        *prom.CounterVec
	backendDuration *prom.HistogramVec
}

// New creates and registers the router collectors on a fresh registry
func New() *Metrics {
	registry := prom.NewRegistry()
	m := &Metrics{
		registry: registry,
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "router",
			Name:      "requests_total",
			Help:      "Messages dispatched, by tag and outcome.",
		}, []string{"tag", "outcome"}),
		backendDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "router",
			Name:      "backend_duration_seconds",
			Help:      "Latency of handler calls, by tag.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"tag"}),
	}
	registry.MustRegister(m.requests, m.backendDuration)
	return m
}

// ObserveDispatch records one dispatch. tag is empty for unrouted messages.
func (m *Metrics) ObserveDispatch(tag, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if tag == "" {
		tag = "none"
	}
	m.requests.WithLabelValues(tag, outcome).Inc()
	if outcome != OutcomeUnrouted {
		m.backendDuration.WithLabelValues(tag).Observe(elapsed.Seconds())
	}
}

// Registry exposes the underlying registry for gathering
func (m *Metrics) Registry() *prom.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
