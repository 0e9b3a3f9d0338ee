/**
 * @description
 * Virtual-user load runner. Spawns N independent sessions, each looping over
 * weighted random task picks with a randomized wait between calls, until the
 * duration elapses or the context is cancelled. Sessions own their identifiers
 * and share nothing mutable except the atomic task counters.
 */
package loadgen

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/Linkin89/performance-tests/internal/scenario"
)

// Options controls one load run.
type Options struct {
	Users    int
	Duration time.Duration
	WaitMin  time.Duration
	WaitMax  time.Duration
}

// TaskStats counts outcomes for one named task across all sessions.
type TaskStats struct {
	OK      int64
	Skipped int64
	Failed  int64
}

// Report aggregates the outcome of one load run.
type Report struct {
	Scenario string
	Elapsed  time.Duration
	Tasks    map[string]*TaskStats
}

// Runner drives one scenario under load.
type Runner struct {
	newSet  func() *scenario.TaskSet
	clients *scenario.Clients
	opts    Options
	logger  *slog.Logger
}

// NewRunner creates a load runner for the given journey constructor.
func NewRunner(newSet func() *scenario.TaskSet, clients *scenario.Clients, opts Options, logger *slog.Logger) *Runner {
	if opts.Users <= 0 {
		opts.Users = 1
	}
	if opts.WaitMax < opts.WaitMin {
		opts.WaitMax = opts.WaitMin
	}
	return &Runner{newSet: newSet, clients: clients, opts: opts, logger: logger}
}

// Run executes the load and blocks until every session has stopped.
func (r *Runner) Run(ctx context.Context) *Report {
	set := r.newSet()
	report := &Report{Scenario: set.Name, Tasks: make(map[string]*TaskStats)}
	for _, t := range set.Tasks {
		report.Tasks[t.Name] = &TaskStats{}
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if r.opts.Duration > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.opts.Duration)
		defer cancel()
	}

	r.logger.Info("load run starting",
		"scenario", set.Name,
		"users", r.opts.Users,
		"duration", r.opts.Duration.String(),
	)

	start := time.Now()
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < r.opts.Users; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.runSession(runCtx, set, report, &mu)
		}()
	}
	wg.Wait()

	report.Elapsed = time.Since(start)
	r.logReport(report)
	return report
}

// runSession is one virtual user's loop: pick, run, record, wait.
func (r *Runner) runSession(ctx context.Context, set *scenario.TaskSet, report *Report, mu *sync.Mutex) {
	session := scenario.NewSession(r.clients)

	for {
		if ctx.Err() != nil {
			return
		}

		task := set.Pick()
		err := task.Run(ctx, session)

		failed := false
		mu.Lock()
		stats := report.Tasks[task.Name]
		switch {
		case err == nil:
			stats.OK++
		case errors.Is(err, scenario.ErrSkipped):
			stats.Skipped++
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
			// Run wind-down, not a task failure.
		default:
			stats.Failed++
			failed = true
		}
		mu.Unlock()

		if failed {
			r.logger.Warn("task failed", "scenario", set.Name, "task", task.Name, "error", err)
		}

		if !r.wait(ctx) {
			return
		}
	}
}

// wait sleeps a random interval in [WaitMin, WaitMax]; false means the run is over.
func (r *Runner) wait(ctx context.Context) bool {
	d := r.opts.WaitMin
	if span := r.opts.WaitMax - r.opts.WaitMin; span > 0 {
		d += time.Duration(rand.Int64N(int64(span)))
	}
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (r *Runner) logReport(report *Report) {
	names := make([]string, 0, len(report.Tasks))
	for name := range report.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stats := report.Tasks[name]
		r.logger.Info("task results",
			"scenario", report.Scenario,
			"task", name,
			"ok", stats.OK,
			"skipped", stats.Skipped,
			"failed", stats.Failed,
		)
	}
	r.logger.Info("load run finished", "scenario", report.Scenario, "elapsed", report.Elapsed.String())
}
