package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/stateair-etl/internal/adapter/feed"
	"github.com/couchcryptid/stateair-etl/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/stateair-etl/internal/adapter/kafka"
	"github.com/couchcryptid/stateair-etl/internal/config"
	"github.com/couchcryptid/stateair-etl/internal/observability"
	"github.com/couchcryptid/stateair-etl/internal/pipeline"
	"github.com/couchcryptid/stateair-etl/internal/scheduler"
	"github.com/couchcryptid/stateair-etl/internal/units"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	directory, err := config.LoadDirectory(cfg.DirectoryFile)
	if err != nil {
		logger.Error("failed to load station directory", "error", err)
		os.Exit(1)
	}
	zones, coords := directory.Len()
	logger.Info("station directory loaded", "timezones", zones, "coordinates", coords, "override", cfg.DirectoryFile)

	client := feed.NewHTTPClient(cfg.HTTPTimeout, feed.BreakerSettings{
		MaxFailures: cfg.BreakerMaxFailures,
		OpenTimeout: cfg.BreakerTimeout,
	}, logger)
	fetcher := feed.NewFetcher(client, logger, metrics)
	adapter := pipeline.NewAdapter(fetcher, directory, units.Converter{}, logger, metrics)

	writer := kafkaadapter.NewWriter(cfg, logger)
	runner := pipeline.NewRunner(cfg.Sources, adapter, writer, logger, metrics, nil)

	sched, err := scheduler.New(cfg.FetchInterval, runner, logger)
	if err != nil {
		logger.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, runner, nil, sched, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start scheduled runs.
	logger.Info("scheduler starting", "interval", cfg.FetchInterval, "sources", len(cfg.Sources))
	sched.Start()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	sched.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
