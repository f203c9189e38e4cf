package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "ingester",
		Name:      "process_block_total",
		Help:      "Count of announcements processed through the pipeline.",
	}, []string{"status"})

	ingesterProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockpulse",
		Subsystem: "ingester",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of the enrich and persist path for one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Ingester tracks metrics for the ingestion supervisor.
type Ingester struct{}

// NewIngester constructs a metrics collector for the ingestion loop.
func NewIngester() *Ingester {
	return &Ingester{}
}

// ObserveProcessBlock records the outcome and duration of one announcement.
func (m Ingester) ObserveProcessBlock(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ingesterProcessBlockTotal.WithLabelValues(status).Inc()
	ingesterProcessBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
