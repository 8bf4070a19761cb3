package metrics

import (
	"errors"
	"net/http"
	"time"

	"baking_oven/internal/oven"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "oven"

// Run outcome label values.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
)

// Metrics holds the Prometheus collectors of the oven service on a private registry.
type Metrics struct {
	runs             *prometheus.CounterVec
	runDuration      *prometheus.HistogramVec
	stageActivations *prometheus.CounterVec
	fanOn            prometheus.Gauge

	registry *prometheus.Registry
}

// New registers all collectors under namespace (defaults to "oven").
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "program_runs_total",
				Help:      "Total number of baking program runs by outcome",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "program_run_duration_seconds",
				Help:      "Wall-clock time spent in a program run",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		stageActivations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_activations_total",
				Help:      "Heating activations by heat type and outcome",
			},
			[]string{"heat", "status"},
		),
		fanOn: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fan_on",
				Help:      "1 while the circulation fan is switched on",
			},
		),
	}

	registry.MustRegister(m.runs, m.runDuration, m.stageActivations, m.fanOn)
	return m
}

// RecordRun records the outcome of one program run.
func (m *Metrics) RecordRun(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(status).Inc()
	m.runDuration.WithLabelValues(status).Observe(d.Seconds())
}

// SetFan mirrors the fan state into the fan_on gauge.
func (m *Metrics) SetFan(on bool) {
	if m == nil {
		return
	}
	if on {
		m.fanOn.Set(1)
		return
	}
	m.fanOn.Set(0)
}

func (m *Metrics) recordStage(heat oven.HeatType, err error) {
	if m == nil {
		return
	}
	status := StatusSucceeded
	if err != nil {
		status = StatusFailed
	}
	m.stageActivations.WithLabelValues(heat.String(), status).Inc()
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RunStatus maps a Start result to a run outcome label.
func RunStatus(err error) string {
	switch {
	case err == nil:
		return StatusSucceeded
	case errors.Is(err, oven.ErrOven):
		return StatusFailed
	default:
		return StatusRejected
	}
}
