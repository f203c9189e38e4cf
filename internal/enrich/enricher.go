// Package enrich joins announced blocks with their full detail and with
// market and mempool context.
package enrich

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/blockpulse/blockpulse-backend/internal/fault"
	"github.com/blockpulse/blockpulse-backend/internal/model"
	"github.com/blockpulse/blockpulse-backend/pkg/safe"
	"github.com/blockpulse/blockpulse-backend/pkg/workerpool"
)

// Enricher turns one announcement into a persistable record. The block detail
// is mandatory; market and mempool failures degrade to zero-valued snapshots
// so a flaky secondary source cannot stall ingestion.
type Enricher struct {
	details DetailSource
	market  MarketSource
	mempool MempoolSource
	logger  *zap.Logger
}

// NewEnricher builds an enricher over the three upstream sources.
func NewEnricher(details DetailSource, market MarketSource, mempool MempoolSource, logger *zap.Logger) (*Enricher, error) {
	if details == nil {
		return nil, errors.New("detail source is required")
	}
	if market == nil {
		return nil, errors.New("market source is required")
	}
	if mempool == nil {
		return nil, errors.New("mempool source is required")
	}
	return &Enricher{
		details: details,
		market:  market,
		mempool: mempool,
		logger:  logger,
	}, nil
}

// Enrich fetches the three sources concurrently and assembles the flat record.
// The returned detail carries the per-transaction data the record's derived
// metrics are computed from. A detail failure fails the whole enrichment.
func (e *Enricher) Enrich(ctx context.Context, ann model.BlockAnnouncement) (model.BlockRecord, model.BlockDetail, error) {
	var (
		detail      model.BlockDetail
		marketSnap  model.MarketSnapshot
		mempoolSnap model.MempoolSnapshot
	)

	tasks := []func(context.Context) error{
		func(ctx context.Context) error {
			d, err := e.details.BlockDetail(ctx, ann.Hash)
			if err != nil {
				return &fault.FetchError{Source: "block_detail", Err: err}
			}
			detail = d
			return nil
		},
		func(ctx context.Context) error {
			s, err := e.market.MarketSnapshot(ctx)
			if err != nil {
				e.logger.Warn("market snapshot unavailable, using zero values",
					zap.Int64("block_height", ann.Height),
					zap.Error(err))
				return nil
			}
			marketSnap = s
			return nil
		},
		func(ctx context.Context) error {
			s, err := e.mempool.MempoolSnapshot(ctx)
			if err != nil {
				e.logger.Warn("mempool snapshot unavailable, using zero values",
					zap.Int64("block_height", ann.Height),
					zap.Error(err))
				return nil
			}
			mempoolSnap = s
			return nil
		},
	}

	err := workerpool.Process(ctx, len(tasks), tasks,
		func(ctx context.Context, task func(context.Context) error) error {
			return task(ctx)
		})
	if err != nil {
		return model.BlockRecord{}, model.BlockDetail{}, err
	}

	txCount, err := safe.Int32(detail.TxCount)
	if err != nil {
		return model.BlockRecord{}, model.BlockDetail{}, &fault.ParseError{Field: "n_tx", Err: err}
	}

	record := model.BlockRecord{
		BlockHeight:        ann.Height,
		TransactionCount:   txCount,
		RecentTransactions: recentTransactions(detail.Transactions),
		Difficulty:         detail.Difficulty,
		MarketPrice:        marketSnap.PriceUSD,
		TradingVolume24h:   marketSnap.TradingVolume24h,
		MempoolSize:        mempoolSnap.PendingCount,
	}
	return record, detail, nil
}

// recentTransactions projects the leading transactions of the block, in block
// order, capped at the record limit.
func recentTransactions(txs []model.DetailTransaction) []model.RecentTransaction {
	n := len(txs)
	if n > model.RecentTransactionLimit {
		n = model.RecentTransactionLimit
	}
	recent := make([]model.RecentTransaction, 0, n)
	for _, tx := range txs[:n] {
		recent = append(recent, model.RecentTransaction{Hash: tx.Hash, Fee: tx.Fee})
	}
	return recent
}
