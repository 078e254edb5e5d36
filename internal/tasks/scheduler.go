package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gochurch/internal/middleware"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic maintenance jobs on a seconds-resolution cron.
type Scheduler struct {
	engine    *cron.Cron
	pruner    Pruner
	retention time.Duration
	timeout   time.Duration
}

// NewScheduler builds a Scheduler that prunes finished task results older
// than retention.
func NewScheduler(pruner Pruner, retention time.Duration) *Scheduler {
	return &Scheduler{
		engine:    cron.New(cron.WithSeconds()),
		pruner:    pruner,
		retention: retention,
		timeout:   time.Minute,
	}
}

// RegisterJobs adds the prune job on spec, a six-field cron expression.
func (s *Scheduler) RegisterJobs(spec string) error {
	if _, err := s.engine.AddJob(spec, cron.FuncJob(s.prune)); err != nil {
		return fmt.Errorf("schedule %s %q: %w", PruneTask, spec, err)
	}
	return nil
}

func (s *Scheduler) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	out, err := Prune(s.pruner, s.retention)(ctx)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "task result prune failed", slog.String("error", err.Error()))
		return
	}
	middleware.Logger.InfoContext(ctx, "task results pruned", slog.Any("result", out))
}

func (s *Scheduler) Start() {
	middleware.Logger.Info("task scheduler started", slog.Int("jobs", len(s.engine.Entries())))
	s.engine.Start()
}

// Stop halts the schedule and waits for a running job to return.
func (s *Scheduler) Stop() {
	<-s.engine.Stop().Done()
	middleware.Logger.Info("task scheduler stopped")
}
