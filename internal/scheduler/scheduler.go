// Package scheduler runs the pipeline on a fixed interval using gocron.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/couchcryptid/stateair-etl/internal/pipeline"
)

// ErrNotRunning is returned by RunNow before Start or after Stop.
var ErrNotRunning = errors.New("scheduler not running")

// Runner performs one pass over the configured sources.
type Runner interface {
	RunOnce(ctx context.Context) pipeline.RunSummary
}

// Scheduler triggers Runner.RunOnce every interval, starting immediately.
// Runs never overlap.
type Scheduler struct {
	sched  *gocron.Scheduler
	job    *gocron.Job
	runner Runner
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a stopped Scheduler.
func New(interval time.Duration, runner Runner, logger *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid interval %s", interval)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		sched:  gocron.NewScheduler(time.UTC),
		runner: runner,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	s.sched.SingletonModeAll()

	job, err := s.sched.Every(interval).Tag("stateair-run").Do(s.run)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("schedule run: %w", err)
	}
	s.job = job
	return s, nil
}

func (s *Scheduler) run() {
	summary := s.runner.RunOnce(s.ctx)
	s.logger.Info("scheduled run complete",
		"run_id", summary.RunID,
		"failed", summary.Failed,
		"measurements", summary.Measurements,
		"next_run", s.job.NextRun(),
	)
}

// Start begins scheduling without blocking.
func (s *Scheduler) Start() {
	s.sched.StartAsync()
}

// RunNow starts an extra run without waiting for it.
func (s *Scheduler) RunNow() error {
	if !s.sched.IsRunning() {
		return ErrNotRunning
	}
	s.sched.RunAll()
	return nil
}

// Stop cancels any in-flight run and halts the schedule.
func (s *Scheduler) Stop() {
	s.cancel()
	s.sched.Stop()
}
