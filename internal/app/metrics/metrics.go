// Package metrics holds the Prometheus collectors for runs and exports.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeDiscarded = "discarded"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	runsStarted prometheus.Counter
	runs        *prometheus.CounterVec
	latency     prometheus.Histogram
	exports     *prometheus.CounterVec
	history     prometheus.Gauge
}

// New registers the collectors on a fresh registry, plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "verbaflow",
			Name:      "runs_started_total",
			Help:      "Transcription runs started.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "verbaflow",
			Name:      "runs_finished_total",
			Help:      "Transcription runs finished, by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "verbaflow",
			Name:      "transcription_duration_seconds",
			Help:      "Time spent waiting for the transcription backend.",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 40, 80, 160, 320},
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "verbaflow",
			Name:      "exports_total",
			Help:      "Exports produced, by format.",
		}, []string{"format"}),
		history: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "verbaflow",
			Name:      "history_entries",
			Help:      "Entries currently kept in the history slot.",
		}),
	}
	reg.MustRegister(
		m.runsStarted, m.runs, m.latency, m.exports, m.history,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RunStarted counts a run entering processing.
func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.runsStarted.Inc()
}

// RunFinished records the outcome and backend latency of a run.
func (m *Metrics) RunFinished(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.latency.Observe(elapsed.Seconds())
}

// Exported counts an export in the given format.
func (m *Metrics) Exported(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

// SetHistorySize reports the number of stored entries.
func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.history.Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
