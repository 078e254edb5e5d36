package tasks

import (
	"context"
	"time"

	"gochurch/internal/seed"

	"gorm.io/gorm"
)

// Task names as stored on TaskResult rows.
const (
	SampleDataTask = "generate_sample_data"
	CleanupTask    = "cleanup_old_data"
	PruneTask      = "prune_task_results"
)

// SampleData returns a task that seeds a sample community.
func SampleData(db *gorm.DB, opts seed.Options) Func {
	return func(ctx context.Context) (any, error) {
		return seed.Seed(ctx, db, opts)
	}
}

// Cleanup returns a task that deletes all community rows and reports the
// per-table counts.
func Cleanup(db *gorm.DB) Func {
	return func(ctx context.Context) (any, error) {
		deleted, err := seed.ClearAll(ctx, db)
		if err != nil {
			return nil, err
		}
		return map[string]any{"deleted": deleted}, nil
	}
}

// Pruner deletes finished task results older than a retention window.
type Pruner interface {
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Prune returns a task that drops finished results older than retention.
func Prune(p Pruner, retention time.Duration) Func {
	return func(ctx context.Context) (any, error) {
		n, err := p.DeleteFinishedBefore(ctx, time.Now().UTC().Add(-retention))
		if err != nil {
			return nil, err
		}
		return map[string]int64{"pruned": n}, nil
	}
}
