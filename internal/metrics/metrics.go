// Package metrics records settlement batch outcomes as Prometheus metrics.
//
// A batch is a short-lived process, so nothing is scraped: the registry is
// dumped to a node_exporter textfile after every run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carshare-settlement/internal/domain"
)

const namespace = "settlement"

// Run results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder owns a private registry so that several runners (and tests) never
// share collectors.
type Recorder struct {
	registry *prometheus.Registry

	rentals       prometheus.Counter
	modifications prometheus.Counter
	actionAmounts *prometheus.CounterVec
	runDuration   prometheus.Histogram
	lastSuccess   prometheus.Gauge
	runs          *prometheus.CounterVec
}

// NewRecorder creates a recorder with all settlement collectors registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		rentals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_total",
			Help:      "Total rentals settled.",
		}),
		modifications: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modifications_total",
			Help:      "Total rental modifications settled.",
		}),
		actionAmounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_amount_cents_total",
			Help:      "Total amount of emitted actions in cents by party and direction.",
		}, []string{"who", "type"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of settlement batches.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful batch.",
		}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total settlement batches by result.",
		}, []string{"result"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordRentals counts settled rentals.
func (r *Recorder) RecordRentals(n int) {
	r.rentals.Add(float64(n))
}

// RecordModifications counts settled modifications.
func (r *Recorder) RecordModifications(n int) {
	r.modifications.Add(float64(n))
}

// RecordActions adds the amounts of emitted actions.
func (r *Recorder) RecordActions(actions []domain.Action) {
	for _, a := range actions {
		r.actionAmounts.WithLabelValues(string(a.Who), string(a.Type)).Add(float64(a.Amount))
	}
}

// RecordRun observes the outcome of one batch.
func (r *Recorder) RecordRun(started time.Time, err error) {
	finished := time.Now()
	r.runDuration.Observe(finished.Sub(started).Seconds())
	if err != nil {
		r.runs.WithLabelValues(ResultFailure).Inc()
		return
	}
	r.runs.WithLabelValues(ResultSuccess).Inc()
	r.lastSuccess.Set(float64(finished.Unix()))
}

// WriteTextfile dumps the registry in the text exposition format. An empty
// path disables the dump.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
