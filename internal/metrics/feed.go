package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedConnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "feed",
		Name:      "connects_total",
		Help:      "Count of websocket feed connection attempts.",
	}, []string{"status"})

	feedFramesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "feed",
		Name:      "frames_total",
		Help:      "Count of inbound feed frames by handling outcome.",
	}, []string{"status"})
)

// Feed tracks metrics for the websocket block feed.
type Feed struct{}

// NewFeed constructs a metrics collector for the feed client.
func NewFeed() *Feed {
	return &Feed{}
}

// ObserveConnect records a connection attempt outcome.
func (m Feed) ObserveConnect(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	feedConnectsTotal.WithLabelValues(status).Inc()
}

// ObserveFrame records how an inbound frame was handled.
func (m Feed) ObserveFrame(status string) {
	feedFramesTotal.WithLabelValues(status).Inc()
}
