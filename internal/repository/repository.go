// Package repository persists block records in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the subset of a pgx pool the repository uses.
	Conn interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Close()
	}

	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository stores at most one block_data row per block height.
type Repository struct {
	conn    Conn
	metrics Metrics
}

// NewRepository opens a Postgres pool for the given dsn and verifies
// connectivity.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{conn: pool, metrics: metrics}, nil
}

// Close releases the underlying pool.
func (r *Repository) Close() {
	r.conn.Close()
}

// EnsureSchema creates the block_data table when absent. Run once at startup;
// the migrations under migrations/postgres remain the canonical schema source.
func (r *Repository) EnsureSchema(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("ensure_schema", err, started)
	}()

	const query = `
CREATE TABLE IF NOT EXISTS block_data (
	block_height         BIGINT PRIMARY KEY,
	transaction_count    INTEGER NOT NULL,
	recent_transactions  JSONB NOT NULL,
	average_fee          DOUBLE PRECISION NOT NULL,
	total_volume         DOUBLE PRECISION NOT NULL,
	difficulty           DOUBLE PRECISION NOT NULL,
	hash_rate            DOUBLE PRECISION NOT NULL,
	market_price         DOUBLE PRECISION NOT NULL,
	trading_volume_24h   DOUBLE PRECISION NOT NULL,
	active_addresses_24h BIGINT NOT NULL,
	mempool_size         BIGINT NOT NULL
)`

	if _, err = r.conn.Exec(ctx, query); err != nil {
		err = fmt.Errorf("ensure block_data schema: %w", err)
		return err
	}
	return nil
}
