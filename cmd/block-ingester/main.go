package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blockpulse/blockpulse-backend/internal/enrich"
	"github.com/blockpulse/blockpulse-backend/internal/feed"
	"github.com/blockpulse/blockpulse-backend/internal/metrics"
	"github.com/blockpulse/blockpulse-backend/internal/repository"
	"github.com/blockpulse/blockpulse-backend/internal/service"
)

type config struct {
	PostgresDSN    string        `long:"postgres-dsn" env:"INGESTER_POSTGRES_DSN" description:"Postgres DSN"`
	FeedURL        string        `long:"feed-url" env:"INGESTER_FEED_URL" description:"websocket block feed URL" default:"wss://ws.blockchain.info/inv"`
	BlockAPIURL    string        `long:"block-api-url" env:"INGESTER_BLOCK_API_URL" description:"block detail API base URL" default:"https://blockchain.info"`
	MarketAPIURL   string        `long:"market-api-url" env:"INGESTER_MARKET_API_URL" description:"market data API base URL" default:"https://api.coingecko.com"`
	MempoolAPIURL  string        `long:"mempool-api-url" env:"INGESTER_MEMPOOL_API_URL" description:"mempool count endpoint" default:"https://blockchain.info/q/unconfirmedcount"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"INGESTER_HTTP_TIMEOUT" description:"HTTP timeout for enrichment fetches" default:"10s"`
	SourceRPS      int           `long:"source-rps" env:"INGESTER_SOURCE_RPS" description:"per-source request rate limit" default:"5"`
	ReconnectDelay time.Duration `long:"reconnect-delay" env:"INGESTER_RECONNECT_DELAY" description:"feed reconnect delay" default:"5s"`
	MetricsAddr    string        `long:"metrics-addr" env:"INGESTER_METRICS_ADDR" description:"metrics listen address" default:":9090"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("block ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := repository.NewRepository(ctx, cfg.PostgresDSN, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	fetchMetrics := metrics.NewFetchClient()

	enricher, err := enrich.NewEnricher(
		enrich.NewHTTPDetailSource(cfg.BlockAPIURL, httpClient, cfg.SourceRPS, fetchMetrics),
		enrich.NewHTTPMarketSource(cfg.MarketAPIURL, httpClient, cfg.SourceRPS, fetchMetrics),
		enrich.NewHTTPMempoolSource(cfg.MempoolAPIURL, httpClient, cfg.SourceRPS, fetchMetrics),
		logger.Named("enricher"),
	)
	if err != nil {
		return fmt.Errorf("init enricher: %w", err)
	}

	feedClient, err := feed.NewClient(cfg.FeedURL, feed.WebsocketDialer{}, metrics.NewFeed(), logger.Named("feed"), cfg.ReconnectDelay)
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	svc, err := service.NewIngesterService(feedClient, enricher, repo, metrics.NewIngester(), logger)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the metrics server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}
