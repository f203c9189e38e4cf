package service

import (
	"context"
	"time"

	"github.com/blockpulse/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// FeedSource streams block announcements from the network.
	FeedSource interface {
		Run(ctx context.Context) error
		Announcements() <-chan model.BlockAnnouncement
	}

	// Enricher joins an announcement with block detail, market and mempool data.
	Enricher interface {
		Enrich(ctx context.Context, ann model.BlockAnnouncement) (model.BlockRecord, model.BlockDetail, error)
	}

	// BlockRepository persists enriched block records.
	BlockRepository interface {
		UpsertBlock(ctx context.Context, record model.BlockRecord) error
	}

	// IngesterMetrics observes processed announcements.
	IngesterMetrics interface {
		ObserveProcessBlock(err error, started time.Time)
	}
)
