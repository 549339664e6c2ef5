package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/stateair-etl/internal/domain"
	"github.com/couchcryptid/stateair-etl/internal/observability"
)

// SourceAdapter produces measurements for one source.
type SourceAdapter interface {
	FetchData(ctx context.Context, src domain.Source) (domain.Result, error)
}

// BatchLoader writes one source's measurements to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, batch domain.Batch) error
}

// RunSummary describes one pass over the configured sources.
type RunSummary struct {
	RunID        string
	Sources      int
	Failed       int
	Measurements int
}

// Runner drives the adapter over every configured source and loads the results.
type Runner struct {
	sources []domain.Source
	adapter SourceAdapter
	loader  BatchLoader
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
	ready   atomic.Bool
}

// NewRunner creates a Runner. A nil clock uses the real clock.
func NewRunner(sources []domain.Source, a SourceAdapter, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Runner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Runner{
		sources: sources,
		adapter: a,
		loader:  l,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// CheckReadiness returns nil once a run has loaded at least one source,
// or an error describing why the service is not yet ready.
func (r *Runner) CheckReadiness(_ context.Context) error {
	if !r.ready.Load() {
		return errors.New("no source has been loaded yet")
	}
	return nil
}

// RunOnce fetches and loads every source in order. A failing source is logged
// and counted; it does not stop the others. Cancelling ctx ends the run early.
func (r *Runner) RunOnce(ctx context.Context) RunSummary {
	start := r.clock.Now()
	summary := RunSummary{RunID: uuid.NewString()}
	logger := r.logger.With("run_id", summary.RunID)

	r.metrics.PipelineRunning.Set(1)
	defer r.metrics.PipelineRunning.Set(0)

	logger.Info("run started", "sources", len(r.sources))
	for _, src := range r.sources {
		if ctx.Err() != nil {
			logger.Info("run stopping", "reason", ctx.Err())
			break
		}
		summary.Sources++

		n, err := r.processSource(ctx, logger, summary.RunID, src)
		if err != nil {
			summary.Failed++
			continue
		}
		summary.Measurements += n
	}

	elapsed := r.clock.Since(start)
	r.metrics.RunDuration.Observe(elapsed.Seconds())
	logger.Info("run finished",
		"sources", summary.Sources,
		"failed", summary.Failed,
		"measurements", summary.Measurements,
		"duration", elapsed,
	)
	return summary
}

// processSource runs the adapter for one source and loads a successful result.
// Returns the number of loaded measurements.
func (r *Runner) processSource(ctx context.Context, logger *slog.Logger, runID string, src domain.Source) (int, error) {
	result, err := r.adapter.FetchData(ctx, src)
	if err != nil {
		logger.Warn("source failed", "source", src.URL, "error", err)
		return 0, err
	}

	if len(result.Measurements) == 0 {
		logger.Info("source has no measurements", "source", src.URL)
		r.ready.Store(true)
		return 0, nil
	}

	batch := domain.Batch{RunID: runID, Source: src.URL, Measurements: result.Measurements}
	if err := r.loader.LoadBatch(ctx, batch); err != nil {
		r.metrics.LoadErrors.Inc()
		logger.Error("load batch failed", "source", src.URL, "error", err, "batch_size", len(batch.Measurements))
		return 0, err
	}

	r.metrics.MessagesProduced.Add(float64(len(batch.Measurements)))
	r.ready.Store(true)
	logger.Debug("source loaded", "source", src.URL, "measurements", len(batch.Measurements))
	return len(batch.Measurements), nil
}
