package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of Postgres repository operations.",
	}, []string{"operation", "status"})

	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockpulse",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Postgres repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Repository tracks metrics for block storage operations.
type Repository struct{}

// NewRepository constructs a metrics collector for the repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Observe records a single repository operation outcome and duration.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	repositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	repositoryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
