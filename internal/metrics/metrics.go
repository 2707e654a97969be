// Package metrics provides Prometheus metrics for arrmate.
// Collectors live on a Metrics value with its own registry; a nil *Metrics
// is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all arrmate metrics
	namespace = "arrmate"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// CommandsTotal tracks executed commands by outcome
	CommandsTotal *prometheus.CounterVec
	// StageDuration tracks time spent per pipeline stage
	StageDuration *prometheus.HistogramVec
	// ConnectionStatus tracks backend availability from discovery
	ConnectionStatus *prometheus.GaugeVec
	// ServiceInfo exposes backend versions (always 1, labels carry info)
	ServiceInfo *prometheus.GaugeVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of commands by action, media type and outcome",
			},
			[]string{"action", "media_type", "outcome"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"stage"},
		),
		ConnectionStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "connection_status",
				Help:      "Connection status to backends (1=connected, 0=disconnected)",
			},
			[]string{"backend", "type"},
		),
		ServiceInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "service_info",
				Help:      "Information about connected backends (always 1, labels contain info)",
			},
			[]string{"backend", "version"},
		),
	}

	m.registry.MustRegister(
		m.CommandsTotal,
		m.StageDuration,
		m.ConnectionStatus,
		m.ServiceInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// ObserveCommand records one finished command.
func (m *Metrics) ObserveCommand(action, mediaType, outcome string) {
	if m == nil {
		return
	}
	if action == "" {
		action = "unknown"
	}
	if mediaType == "" {
		mediaType = "unknown"
	}
	m.CommandsTotal.WithLabelValues(action, mediaType, outcome).Inc()
}

// ObserveStage records the duration of one pipeline stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// SetBackend records the outcome of a discovery probe.
func (m *Metrics) SetBackend(name, backendType, version string, up bool) {
	if m == nil {
		return
	}
	v := 0.0
	if up {
		v = 1
	}
	m.ConnectionStatus.WithLabelValues(name, backendType).Set(v)
	if up && version != "" {
		m.ServiceInfo.DeletePartialMatch(prometheus.Labels{"backend": name})
		m.ServiceInfo.WithLabelValues(name, version).Set(1)
	}
}
