package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/blockpulse/blockpulse-backend/internal/model"
)

// LatestBlock returns the stored record with the highest block height.
// pgx.ErrNoRows is returned unwrapped for an empty table.
func (r *Repository) LatestBlock(ctx context.Context) (record model.BlockRecord, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("latest_block", err, started)
	}()

	const query = `
SELECT
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
FROM block_data
ORDER BY block_height DESC
LIMIT 1`

	var recent []byte
	row := r.conn.QueryRow(ctx, query)
	if err = row.Scan(
		&record.BlockHeight,
		&record.TransactionCount,
		&recent,
		&record.AverageFee,
		&record.TotalVolume,
		&record.Difficulty,
		&record.HashRate,
		&record.MarketPrice,
		&record.TradingVolume24h,
		&record.ActiveAddresses24h,
		&record.MempoolSize,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BlockRecord{}, err
		}
		err = fmt.Errorf("scan latest block: %w", err)
		return model.BlockRecord{}, err
	}

	if err = json.Unmarshal(recent, &record.RecentTransactions); err != nil {
		err = fmt.Errorf("decode recent transactions: %w", err)
		return model.BlockRecord{}, err
	}
	if record.RecentTransactions == nil {
		record.RecentTransactions = []model.RecentTransaction{}
	}

	return record, nil
}
