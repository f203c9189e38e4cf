package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blockpulse/blockpulse-backend/internal/fault"
	"github.com/blockpulse/blockpulse-backend/internal/model"
)

// UpsertBlock writes the record, replacing every field of an existing row at
// the same height. The write is a single statement, so readers never see a
// half-updated row.
func (r *Repository) UpsertBlock(ctx context.Context, record model.BlockRecord) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("upsert_block", err, started)
	}()

	recent, err := json.Marshal(record.RecentTransactions)
	if err != nil {
		err = &fault.PersistError{Err: fmt.Errorf("encode recent transactions: %w", err)}
		return err
	}

	const query = `
INSERT INTO block_data (
	block_height,
	transaction_count,
	recent_transactions,
	average_fee,
	total_volume,
	difficulty,
	hash_rate,
	market_price,
	trading_volume_24h,
	active_addresses_24h,
	mempool_size
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (block_height) DO UPDATE SET
	transaction_count = EXCLUDED.transaction_count,
	recent_transactions = EXCLUDED.recent_transactions,
	average_fee = EXCLUDED.average_fee,
	total_volume = EXCLUDED.total_volume,
	difficulty = EXCLUDED.difficulty,
	hash_rate = EXCLUDED.hash_rate,
	market_price = EXCLUDED.market_price,
	trading_volume_24h = EXCLUDED.trading_volume_24h,
	active_addresses_24h = EXCLUDED.active_addresses_24h,
	mempool_size = EXCLUDED.mempool_size`

	if _, err = r.conn.Exec(ctx, query,
		record.BlockHeight,
		record.TransactionCount,
		recent,
		record.AverageFee,
		record.TotalVolume,
		record.Difficulty,
		record.HashRate,
		record.MarketPrice,
		record.TradingVolume24h,
		record.ActiveAddresses24h,
		record.MempoolSize,
	); err != nil {
		err = &fault.PersistError{Err: fmt.Errorf("upsert block %d: %w", record.BlockHeight, err)}
		return err
	}
	return nil
}
