package enrich

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/blockpulse/blockpulse-backend/internal/model"
)

const marketQuery = "/api/v3/simple/price?ids=bitcoin&vs_currencies=usd&include_24hr_vol=true"

type marketPayload struct {
	Bitcoin struct {
		USD       *float64 `json:"usd"`
		USD24hVol *float64 `json:"usd_24h_vol"`
	} `json:"bitcoin"`
}

// HTTPMarketSource fetches the bitcoin spot price and 24h trading volume from
// a coingecko style simple-price endpoint.
type HTTPMarketSource struct {
	baseURL string
	client  *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewHTTPMarketSource builds a market source rate limited to rps requests per
// second against the upstream.
func NewHTTPMarketSource(baseURL string, client *http.Client, rps int, metrics Metrics) *HTTPMarketSource {
	if rps <= 0 {
		rps = defaultSourceRPS
	}
	return &HTTPMarketSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		rl:      ratelimit.New(rps),
		metrics: metrics,
	}
}

// MarketSnapshot fetches the current market data. Fields the upstream omitted
// decode to zero values.
func (s *HTTPMarketSource) MarketSnapshot(ctx context.Context) (snapshot model.MarketSnapshot, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("market_snapshot", err, started)
	}()

	s.rl.Take()

	var payload marketPayload
	if err = getJSON(ctx, s.client, s.baseURL+marketQuery, &payload); err != nil {
		return model.MarketSnapshot{}, err
	}

	return model.MarketSnapshot{
		PriceUSD:         valueOr(payload.Bitcoin.USD, 0),
		TradingVolume24h: valueOr(payload.Bitcoin.USD24hVol, 0),
	}, nil
}
