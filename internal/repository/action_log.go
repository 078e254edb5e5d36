package repository

import (
	"context"
	"errors"
	"fmt"

	"gochurch/internal/cache"
	"gochurch/internal/models"
	"gochurch/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActionLogRepository persists per-user action logs. Writes are keyed on
// (user_id, action_type, target_type, target_id) and resolve conflicts in a
// single statement.
type ActionLogRepository interface {
	GetByID(ctx context.Context, id uint) (*models.ActionLog, error)
	Find(ctx context.Context, key models.ActionKey) (*models.ActionLog, error)
	Upsert(ctx context.Context, log *models.ActionLog) (changed bool, err error)
	Toggle(ctx context.Context, log *models.ActionLog) error
	Count(ctx context.Context, targetType models.TargetType, targetID uint, actionType models.ActionType) (int64, error)
	ListByUser(ctx context.Context, userID uint, actionType *models.ActionType, offset, limit int) ([]models.ActionLog, error)
	ListByTarget(ctx context.Context, targetType models.TargetType, targetID uint, actionType *models.ActionType, offset, limit int) ([]models.ActionLog, error)
}

type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository returns a gorm-backed ActionLogRepository.
func NewActionLogRepository(db *gorm.DB) ActionLogRepository {
	return &actionLogRepository{db: db}
}

var actionKeyColumns = []clause.Column{
	{Name: "user_id"}, {Name: "action_type"}, {Name: "target_type"}, {Name: "target_id"},
}

func (r *actionLogRepository) GetByID(ctx context.Context, id uint) (*models.ActionLog, error) {
	defer observability.TrackQuery("get", "action_logs")()

	var log models.ActionLog
	if err := takeByID(conn(ctx, r.db), &log, "Action log", id); err != nil {
		return nil, err
	}
	return &log, nil
}

// Find returns the row for key, or nil when none exists.
func (r *actionLogRepository) Find(ctx context.Context, key models.ActionKey) (*models.ActionLog, error) {
	var log models.ActionLog
	err := conn(ctx, r.db).
		Where("user_id = ? AND action_type = ? AND target_type = ? AND target_id = ?",
			key.UserID, key.ActionType, key.TargetType, key.TargetID).
		Take(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find action log: %w", err)
	}
	return &log, nil
}

// Upsert writes log.IsOn and log.CreatedAt onto the row for log's key,
// inserting it if absent, and loads the stored row back into log. changed
// reports whether the active state differs from what was stored before
// (an absent row counts as off).
func (r *actionLogRepository) Upsert(ctx context.Context, log *models.ActionLog) (bool, error) {
	defer observability.TrackQuery("upsert", "action_logs")()

	log.ID = 0
	var changed bool
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var prev models.ActionLog
		err := q.Select("is_on").
			Where("user_id = ? AND action_type = ? AND target_type = ? AND target_id = ?",
				log.UserID, log.ActionType, log.TargetType, log.TargetID).
			Take(&prev).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			changed = log.IsOn
		case err != nil:
			return err
		default:
			changed = prev.IsOn != log.IsOn
		}

		return tx.Clauses(
			clause.OnConflict{
				Columns:   actionKeyColumns,
				DoUpdates: clause.AssignmentColumns([]string{"is_on", "created_at"}),
			},
			clause.Returning{},
		).Create(log).Error
	})
	if err != nil {
		return false, fmt.Errorf("upsert action log: %w", err)
	}

	r.invalidateCount(ctx, log)
	return changed, nil
}

// Toggle flips is_on on the row for log's key, or inserts it switched on,
// and loads the stored row back into log. The flip happens inside the
// conflict clause so concurrent togglers serialize on the row.
func (r *actionLogRepository) Toggle(ctx context.Context, log *models.ActionLog) error {
	defer observability.TrackQuery("toggle", "action_logs")()

	log.ID = 0
	log.IsOn = true
	err := conn(ctx, r.db).Clauses(
		clause.OnConflict{
			Columns: actionKeyColumns,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"is_on":      gorm.Expr("NOT action_logs.is_on"),
				"created_at": gorm.Expr("excluded.created_at"),
			}),
		},
		clause.Returning{},
	).Create(log).Error
	if err != nil {
		return fmt.Errorf("toggle action log: %w", err)
	}

	r.invalidateCount(ctx, log)
	return nil
}

// Count returns the number of active rows for one action on one target.
func (r *actionLogRepository) Count(ctx context.Context, targetType models.TargetType, targetID uint, actionType models.ActionType) (int64, error) {
	var count int64
	key := cache.ActionCountKey(string(targetType), targetID, string(actionType))

	err := cache.Aside(ctx, key, &count, cache.ActionCountTTL, func() error {
		defer observability.TrackQuery("count", "action_logs")()
		return conn(ctx, r.db).Model(&models.ActionLog{}).
			Where("target_type = ? AND target_id = ? AND action_type = ? AND is_on = ?",
				targetType, targetID, actionType, true).
			Count(&count).Error
	})
	if err != nil {
		return 0, fmt.Errorf("count action logs: %w", err)
	}
	return count, nil
}

func (r *actionLogRepository) ListByUser(ctx context.Context, userID uint, actionType *models.ActionType, offset, limit int) ([]models.ActionLog, error) {
	defer observability.TrackQuery("list_by_user", "action_logs")()

	q := conn(ctx, r.db).Where("user_id = ?", userID)
	return r.list(q, actionType, offset, limit)
}

func (r *actionLogRepository) ListByTarget(ctx context.Context, targetType models.TargetType, targetID uint, actionType *models.ActionType, offset, limit int) ([]models.ActionLog, error) {
	defer observability.TrackQuery("list_by_target", "action_logs")()

	q := conn(ctx, r.db).Where("target_type = ? AND target_id = ?", targetType, targetID)
	return r.list(q, actionType, offset, limit)
}

func (r *actionLogRepository) list(q *gorm.DB, actionType *models.ActionType, offset, limit int) ([]models.ActionLog, error) {
	if actionType != nil {
		q = q.Where("action_type = ?", *actionType)
	}
	logs := []models.ActionLog{}
	if err := page(q.Order("created_at DESC, id DESC"), offset, limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list action logs: %w", err)
	}
	return logs, nil
}

// invalidateCount drops the cached count for log's target. Inside a
// transaction the delete waits for commit, otherwise a concurrent Count could
// cache the pre-commit value.
func (r *actionLogRepository) invalidateCount(ctx context.Context, log *models.ActionLog) {
	key := cache.ActionCountKey(string(log.TargetType), log.TargetID, string(log.ActionType))
	afterCommit(ctx, func() { cache.Invalidate(context.WithoutCancel(ctx), key) })
}
