package repository

import (
	"context"
	"fmt"
	"time"

	"gochurch/internal/models"

	"gorm.io/gorm"
)

// TaskResultRepository persists background task state for polling.
type TaskResultRepository interface {
	Create(ctx context.Context, t *models.TaskResult) error
	GetByID(ctx context.Context, id string) (*models.TaskResult, error)
	Save(ctx context.Context, t *models.TaskResult) error
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type taskResultRepository struct {
	db *gorm.DB
}

func NewTaskResultRepository(db *gorm.DB) TaskResultRepository {
	return &taskResultRepository{db: db}
}

func (r *taskResultRepository) Create(ctx context.Context, t *models.TaskResult) error {
	if err := conn(ctx, r.db).Create(t).Error; err != nil {
		return fmt.Errorf("create task result: %w", err)
	}
	return nil
}

func (r *taskResultRepository) GetByID(ctx context.Context, id string) (*models.TaskResult, error) {
	var t models.TaskResult
	if err := takeByID(conn(ctx, r.db), &t, "Task", id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskResultRepository) Save(ctx context.Context, t *models.TaskResult) error {
	if err := conn(ctx, r.db).Save(t).Error; err != nil {
		return fmt.Errorf("save task result %s: %w", t.ID, err)
	}
	return nil
}

// DeleteFinishedBefore removes terminal results that finished before cutoff.
// Pending and running tasks are never pruned.
func (r *taskResultRepository) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := conn(ctx, r.db).
		Where("status IN ? AND finished_at < ?",
			[]models.TaskStatus{models.TaskStatusSuccess, models.TaskStatusFailure}, cutoff).
		Delete(&models.TaskResult{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune task results: %w", res.Error)
	}
	return res.RowsAffected, nil
}
