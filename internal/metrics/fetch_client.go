package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "fetch_client",
		Name:      "operations_total",
		Help:      "Count of enrichment fetches against upstream APIs.",
	}, []string{"operation", "status"})

	fetchRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockpulse",
		Subsystem: "fetch_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of enrichment fetches against upstream APIs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// FetchClient tracks metrics for enrichment fetches.
type FetchClient struct{}

// NewFetchClient constructs a metrics collector for upstream fetches.
func NewFetchClient() *FetchClient {
	return &FetchClient{}
}

// Observe records a single fetch outcome and duration.
func (m FetchClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	fetchRequestsTotal.WithLabelValues(operation, status).Inc()
	fetchRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
