// Package transport exposes the HTTP read API.
package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blockpulse/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// LatestBlockProvider reads the most recent stored block record.
type LatestBlockProvider interface {
	LatestBlock(ctx context.Context) (model.BlockRecord, error)
}

// LatestBlockHandler serves GET /latest_block. Read failures and an empty
// store are masked: the handler answers 200 with an all-zero record, so the
// endpoint never propagates storage errors to clients.
type LatestBlockHandler struct {
	provider LatestBlockProvider
	logger   *zap.Logger
}

// NewLatestBlockHandler returns a handler backed by the given provider.
func NewLatestBlockHandler(provider LatestBlockProvider, logger *zap.Logger) *LatestBlockHandler {
	return &LatestBlockHandler{provider: provider, logger: logger}
}

func (h *LatestBlockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	record, err := h.provider.LatestBlock(r.Context())
	if err != nil {
		h.logger.Warn("latest block lookup failed, serving placeholder", zap.Error(err))
		record = placeholderRecord()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		h.logger.Warn("encode latest block response", zap.Error(err))
	}
}

// placeholderRecord is the all-zero response shape served when no data is
// available. The projection is an empty array, never null.
func placeholderRecord() model.BlockRecord {
	return model.BlockRecord{RecentTransactions: []model.RecentTransaction{}}
}
