// Package metrics exposes Prometheus instrumentation for search runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns the search collectors registered on one Registerer.
type Recorder struct {
	runs     *prometheus.CounterVec
	expanded prometheus.Histogram
	duration *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg. A nil reg uses the default
// Prometheus registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_runs_total",
			Help: "Total search runs by outcome",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expanded_cells",
			Help:    "Cells expanded per search run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall time of search runs, progress callbacks included",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"outcome"}),
	}
}

// ObserveRun records one finished run. Safe on a nil Recorder.
func (r *Recorder) ObserveRun(outcome string, expanded int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.expanded.Observe(float64(expanded))
	r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
