package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/blockpulse/blockpulse-backend/internal/model"
)

// rawblock payload shapes. Fields stay raw so each one decodes on its own:
// a field the upstream omitted or mangled degrades to its default instead of
// failing the whole block.
type (
	rawBlockOutput struct {
		Value json.RawMessage `json:"value"`
	}

	rawBlockTx struct {
		Hash json.RawMessage `json:"hash"`
		Fee  json.RawMessage `json:"fee"`
		Out  json.RawMessage `json:"out"`
	}

	rawBlockPayload struct {
		Hash       json.RawMessage `json:"hash"`
		NTx        json.RawMessage `json:"n_tx"`
		Difficulty json.RawMessage `json:"difficulty"`
		Tx         json.RawMessage `json:"tx"`
	}
)

// HTTPDetailSource fetches full block payloads from a blockchain.info style
// /rawblock endpoint.
type HTTPDetailSource struct {
	baseURL string
	client  *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewHTTPDetailSource builds a detail source rate limited to rps requests per
// second against the upstream.
func NewHTTPDetailSource(baseURL string, client *http.Client, rps int, metrics Metrics) *HTTPDetailSource {
	if rps <= 0 {
		rps = defaultSourceRPS
	}
	return &HTTPDetailSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		rl:      ratelimit.New(rps),
		metrics: metrics,
	}
}

// BlockDetail fetches and decodes the block with the given hash. A missing or
// malformed field decodes to its zero value; a transaction without a usable
// hash or fee is kept with the defaults rather than dropped.
func (s *HTTPDetailSource) BlockDetail(ctx context.Context, hash string) (detail model.BlockDetail, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("block_detail", err, started)
	}()

	s.rl.Take()

	var payload rawBlockPayload
	if err = getJSON(ctx, s.client, s.baseURL+"/rawblock/"+hash, &payload); err != nil {
		return model.BlockDetail{}, err
	}

	txs := fieldOr[[]rawBlockTx](payload.Tx, nil)
	detail = model.BlockDetail{
		Hash:         fieldOr(payload.Hash, hash),
		TxCount:      fieldOr(payload.NTx, int64(len(txs))),
		Difficulty:   fieldOr(payload.Difficulty, 0.0),
		Transactions: make([]model.DetailTransaction, 0, len(txs)),
	}
	for _, tx := range txs {
		rawOuts := fieldOr[[]rawBlockOutput](tx.Out, nil)
		outputs := make([]model.DetailOutput, 0, len(rawOuts))
		for _, out := range rawOuts {
			outputs = append(outputs, model.DetailOutput{Value: fieldOr(out.Value, 0.0)})
		}
		detail.Transactions = append(detail.Transactions, model.DetailTransaction{
			Hash:    fieldOr(tx.Hash, ""),
			Fee:     fieldOr(tx.Fee, int64(0)),
			Outputs: outputs,
		})
	}

	return detail, nil
}
