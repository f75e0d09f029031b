package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Content pipeline Prometheus metrics.
var (
	FilterDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_duration_seconds",
			Help:      "Ranked filter pass duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	FilterResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_results",
			Help:      "Number of records returned by a ranked filter pass",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	SourceFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_total",
			Help:      "Content source fetches by outcome",
		},
		[]string{"source", "status"}, // status: "ok" / "not_found" / "error"
	)

	SourceFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Content source fetch duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"source"},
	)

	DocumentCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_cache_total",
			Help:      "Document cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registerContentOnce sync.Once

// RegisterContentMetrics registers the content pipeline metrics. Safe to call more than once.
func RegisterContentMetrics() {
	registerContentOnce.Do(func() {
		prometheus.MustRegister(
			FilterDuration,
			FilterResults,
			SourceFetchTotal,
			SourceFetchDuration,
			DocumentCacheTotal,
		)
	})
}
