package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	viewComputations    *prometheus.CounterVec
	viewComputeDuration prometheus.Histogram
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	mutations           *prometheus.CounterVec
	consistencyWarnings prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		viewComputations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_view_computations_total",
				Help: "Total number of derived ledger views computed",
			},
			[]string{"view"},
		),
		viewComputeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_view_compute_duration_milliseconds",
				Help:    "Derived view computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_view_cache_hits_total",
				Help: "Total number of derived view cache hits",
			},
			[]string{"view"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_view_cache_misses_total",
				Help: "Total number of derived view cache misses",
			},
			[]string{"view"},
		),
		mutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of transaction mutations",
			},
			[]string{"operation"},
		),
		consistencyWarnings: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_page_consistency_warnings_total",
				Help: "Total number of page/count drift detections under concurrent writes",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordViewComputed(view string, duration time.Duration) {
	m.viewComputations.WithLabelValues(view).Inc()
	m.viewComputeDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordCacheHit(view string) {
	m.cacheHits.WithLabelValues(view).Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(view string) {
	m.cacheMisses.WithLabelValues(view).Inc()
}

func (m *PrometheusMetrics) RecordMutation(operation string) {
	m.mutations.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordConsistencyWarning() {
	m.consistencyWarnings.Inc()
}

// NoopMetrics discards every observation. Used in tests.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return NoopMetrics{} }

func (NoopMetrics) RecordViewComputed(string, time.Duration) {}
func (NoopMetrics) RecordCacheHit(string)                    {}
func (NoopMetrics) RecordCacheMiss(string)                   {}
func (NoopMetrics) RecordMutation(string)                    {}
func (NoopMetrics) RecordConsistencyWarning()                {}
