package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "netlab"

// Metrics records phase timings and per-resource outcomes on a private
// registry so a run can be dumped to a node_exporter textfile.
type Metrics struct {
	registry *prometheus.Registry

	phaseDuration *prometheus.HistogramVec
	phaseRuns     *prometheus.CounterVec
	resources     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Duration of each orchestration phase in seconds",
				Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 900},
			},
			[]string{"operation", "phase"},
		),
		phaseRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "phases_total",
				Help:      "Total number of phases run, by status",
			},
			[]string{"operation", "phase", "status"},
		),
		resources: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_operations_total",
				Help:      "Per-resource outcomes within a phase",
			},
			[]string{"phase", "outcome"},
		),
	}
	m.registry.MustRegister(m.phaseDuration, m.phaseRuns, m.resources)
	return m
}

func (m *Metrics) ObservePhase(operation, phase string, d time.Duration, ok bool) {
	status := "success"
	if !ok {
		status = "failure"
	}
	m.phaseDuration.WithLabelValues(operation, phase).Observe(d.Seconds())
	m.phaseRuns.WithLabelValues(operation, phase, status).Inc()
}

func (m *Metrics) CountResource(phase, outcome string) {
	m.resources.WithLabelValues(phase, outcome).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes all collected metrics in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
