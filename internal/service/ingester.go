// Package service wires the ingestion pipeline together.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/blockpulse/blockpulse-backend/internal/fault"
	"github.com/blockpulse/blockpulse-backend/internal/model"
	"github.com/blockpulse/blockpulse-backend/internal/stats"
)

// IngesterService consumes announcements strictly one at a time: enrich,
// derive the record's summary metrics, persist. A failed stage drops that
// announcement and the loop moves on; only context cancellation stops it.
type IngesterService struct {
	logger   *zap.Logger
	metrics  IngesterMetrics
	feed     FeedSource
	enricher Enricher
	repo     BlockRepository
}

// NewIngesterService builds the ingestion supervisor with its dependencies.
func NewIngesterService(
	feed FeedSource,
	enricher Enricher,
	repo BlockRepository,
	metrics IngesterMetrics,
	logger *zap.Logger,
) (*IngesterService, error) {
	if feed == nil {
		return nil, errors.New("feed source is required")
	}
	if enricher == nil {
		return nil, errors.New("enricher is required")
	}
	if repo == nil {
		return nil, errors.New("block repository is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}

	return &IngesterService{
		logger:   logger,
		metrics:  metrics,
		feed:     feed,
		enricher: enricher,
		repo:     repo,
	}, nil
}

// Run starts the feed and processes its announcements until the context is
// canceled or the feed terminates.
func (s *IngesterService) Run(ctx context.Context) error {
	feedErr := make(chan error, 1)
	go func() {
		feedErr <- s.feed.Run(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ann, ok := <-s.feed.Announcements():
			if !ok {
				return <-feedErr
			}
			s.processAnnouncement(ctx, ann)
		}
	}
}

func (s *IngesterService) processAnnouncement(ctx context.Context, ann model.BlockAnnouncement) {
	started := time.Now()
	err := s.ingest(ctx, ann)
	s.metrics.ObserveProcessBlock(err, started)
	if err != nil {
		s.logger.Error("block dropped",
			zap.Int64("block_height", ann.Height),
			zap.String("block_hash", ann.Hash),
			zap.String("fault", fault.Kind(err)),
			zap.Error(err))
		return
	}

	s.logger.Info("block ingested",
		zap.Int64("block_height", ann.Height),
		zap.String("block_hash", ann.Hash))
}

func (s *IngesterService) ingest(ctx context.Context, ann model.BlockAnnouncement) error {
	record, detail, err := s.enricher.Enrich(ctx, ann)
	if err != nil {
		return err
	}

	record.AverageFee = stats.AverageFee(detail)
	record.TotalVolume = stats.TotalVolume(detail)
	record.HashRate = stats.HashRate(detail)

	return s.repo.UpsertBlock(ctx, record)
}
