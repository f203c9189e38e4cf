package enrich

import (
	"context"
	"time"

	"github.com/blockpulse/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// DetailSource returns the full block payload for an announced hash.
	DetailSource interface {
		BlockDetail(ctx context.Context, hash string) (model.BlockDetail, error)
	}

	// MarketSource returns the current market snapshot.
	MarketSource interface {
		MarketSnapshot(ctx context.Context) (model.MarketSnapshot, error)
	}

	// MempoolSource returns the current mempool snapshot.
	MempoolSource interface {
		MempoolSnapshot(ctx context.Context) (model.MempoolSnapshot, error)
	}

	// Metrics observes upstream fetches.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
