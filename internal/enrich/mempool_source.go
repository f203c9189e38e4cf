package enrich

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/blockpulse/blockpulse-backend/internal/fault"
	"github.com/blockpulse/blockpulse-backend/internal/model"
)

// mempool count responses are a bare decimal integer.
const mempoolBodyLimit = 64

// HTTPMempoolSource fetches the unconfirmed transaction count from a
// blockchain.info style query endpoint.
type HTTPMempoolSource struct {
	url     string
	client  *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewHTTPMempoolSource builds a mempool source rate limited to rps requests
// per second against the upstream.
func NewHTTPMempoolSource(url string, client *http.Client, rps int, metrics Metrics) *HTTPMempoolSource {
	if rps <= 0 {
		rps = defaultSourceRPS
	}
	return &HTTPMempoolSource{
		url:     url,
		client:  client,
		rl:      ratelimit.New(rps),
		metrics: metrics,
	}
}

// MempoolSnapshot fetches the current pending transaction count.
func (s *HTTPMempoolSource) MempoolSnapshot(ctx context.Context) (snapshot model.MempoolSnapshot, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("mempool_snapshot", err, started)
	}()

	s.rl.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return model.MempoolSnapshot{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return model.MempoolSnapshot{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return model.MempoolSnapshot{}, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, mempoolBodyLimit))
	if err != nil {
		return model.MempoolSnapshot{}, err
	}
	count, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return model.MempoolSnapshot{}, &fault.ParseError{Field: "unconfirmed_count", Err: err}
	}

	return model.MempoolSnapshot{PendingCount: count}, nil
}
