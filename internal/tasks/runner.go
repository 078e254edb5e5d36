// Package tasks runs fire-and-forget background work whose progress callers
// poll through persisted TaskResult rows.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/observability"
	"gochurch/internal/repository"

	"github.com/google/uuid"
)

// Func is the body of a task. Its result is stored as JSON.
type Func func(ctx context.Context) (any, error)

// ErrStopped is returned by Submit after Shutdown.
var ErrStopped = errors.New("task runner stopped")

// Runner executes tasks on their own goroutines. Tasks outlive the request
// that submitted them and are cancelled only by Shutdown.
type Runner struct {
	repo repository.TaskResultRepository
	now  func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// NewRunner returns a Runner that records task state in repo.
func NewRunner(repo repository.TaskResultRepository) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		ctx:    ctx,
		cancel: cancel,
	}
}

// Submit records a pending task and starts it. The returned row carries the
// id callers poll with.
func (r *Runner) Submit(ctx context.Context, name string, fn Func) (*models.TaskResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return nil, ErrStopped
	}

	task := &models.TaskResult{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    models.TaskStatusPending,
		CreatedAt: r.now(),
	}
	if err := r.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	run := *task
	r.wg.Add(1)
	go r.execute(&run, fn)
	return task, nil
}

// Get returns the current state of a task.
func (r *Runner) Get(ctx context.Context, id string) (*models.TaskResult, error) {
	return r.repo.GetByID(ctx, id)
}

// Wait blocks until every submitted task has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Shutdown stops accepting tasks, cancels the running ones and waits for
// them until ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) execute(task *models.TaskResult, fn Func) {
	defer r.wg.Done()

	ctx := r.ctx
	log := middleware.Logger.With(slog.String("task_id", task.ID), slog.String("task", task.Name))
	start := time.Now()

	task.Status = models.TaskStatusRunning
	if err := r.repo.Save(ctx, task); err != nil {
		log.ErrorContext(ctx, "failed to mark task running", slog.String("error", err.Error()))
	}
	log.InfoContext(ctx, "task started")

	result, err := r.call(ctx, fn)
	if err == nil {
		err = encodeResult(task, result)
	}

	finished := r.now()
	task.FinishedAt = &finished
	if err != nil {
		task.Status = models.TaskStatusFailure
		task.Error = err.Error()
		log.ErrorContext(ctx, "task failed", slog.String("error", err.Error()))
	} else {
		task.Status = models.TaskStatusSuccess
		log.InfoContext(ctx, "task finished", slog.Duration("duration", time.Since(start)))
	}

	observability.TasksTotal.WithLabelValues(task.Name, string(task.Status)).Inc()
	observability.TaskDuration.WithLabelValues(task.Name).Observe(time.Since(start).Seconds())

	// Record the final state even when the run context was cancelled.
	if err := r.repo.Save(context.WithoutCancel(ctx), task); err != nil {
		log.ErrorContext(ctx, "failed to record task result", slog.String("error", err.Error()))
	}
}

func (r *Runner) call(ctx context.Context, fn Func) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return fn(ctx)
}

func encodeResult(task *models.TaskResult, result any) error {
	if result == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode task result: %w", err)
	}
	task.Result = string(raw)
	task.Payload = raw
	return nil
}
