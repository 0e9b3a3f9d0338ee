/**
 * @description
 * Cron scheduling for recurring load waves. When a cron expression is
 * configured, each tick fires one full load run; overlapping waves are
 * prevented by skipping a tick while the previous run is still active.
 */
package loadgen

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// Scheduler fires load runs on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	runner  *Runner
	logger  *slog.Logger
	running atomic.Bool
}

// NewScheduler creates a scheduler around an existing runner.
func NewScheduler(runner *Runner, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLogger))),
		runner: runner,
		logger: logger,
	}
}

// Start registers the load wave on the given cron spec and starts ticking.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if !s.running.CompareAndSwap(false, true) {
			s.logger.Warn("skipping load wave: previous wave still running", "schedule", spec)
			return
		}
		defer s.running.Store(false)
		s.runner.Run(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduled recurring load waves", "schedule", spec)
	return nil
}

// Stop stops the cron ticker and returns a context that is done once any
// in-flight wave callback has returned.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
