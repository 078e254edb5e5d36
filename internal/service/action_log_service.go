package service

import (
	"context"
	"log/slog"
	"time"

	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/observability"
	"gochurch/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// ActionLogService records per-user actions on posts and comments. Each
// (user, action, target) has a single row whose is_on flag is set, flipped
// and counted; rows are never deleted.
type ActionLogService struct {
	repo      repository.ActionLogRepository
	tx        repository.Transactor
	counters  CounterSink
	syncLikes func(userID uint) bool
	now       func() time.Time
}

// RecordActionInput sets the state of one action explicitly.
type RecordActionInput struct {
	UserID     uint
	ActionType models.ActionType
	TargetType models.TargetType
	TargetID   uint
	IsOn       bool
}

// ActionLogOption configures an ActionLogService.
type ActionLogOption func(*ActionLogService)

// WithCounterSync forwards state changes of likes on posts to counters for
// users where enabled returns true. Without it, action logs never touch
// post counters.
func WithCounterSync(tx repository.Transactor, counters CounterSink, enabled func(userID uint) bool) ActionLogOption {
	return func(s *ActionLogService) {
		s.tx = tx
		s.counters = counters
		s.syncLikes = enabled
	}
}

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) ActionLogOption {
	return func(s *ActionLogService) { s.now = now }
}

func NewActionLogService(repo repository.ActionLogRepository, opts ...ActionLogOption) *ActionLogService {
	s := &ActionLogService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordOrUpdate upserts the row for the input's key with the given is_on
// and a fresh created_at. Repeating the call leaves exactly one row.
func (s *ActionLogService) RecordOrUpdate(ctx context.Context, in RecordActionInput) (log *models.ActionLog, err error) {
	ctx, span := observability.StartSpan(ctx, "ActionLogService.RecordOrUpdate", keyAttrs(in.UserID, in.ActionType, in.TargetType, in.TargetID)...)
	defer func() { observability.EndSpan(span, err) }()

	if err := validateKind(in.ActionType, in.TargetType); err != nil {
		return nil, err
	}

	log = &models.ActionLog{
		UserID:     in.UserID,
		ActionType: in.ActionType,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		IsOn:       in.IsOn,
		CreatedAt:  s.now(),
	}
	err = s.write(ctx, log, func(ctx context.Context) (bool, error) {
		return s.repo.Upsert(ctx, log)
	})
	if err != nil {
		return nil, err
	}

	observability.ActionLogWrites.WithLabelValues("upsert", string(log.ActionType), string(log.TargetType)).Inc()
	return log, nil
}

// Toggle flips is_on for key, creating the row switched on when absent.
// Two toggles restore the original state.
func (s *ActionLogService) Toggle(ctx context.Context, key models.ActionKey) (log *models.ActionLog, err error) {
	ctx, span := observability.StartSpan(ctx, "ActionLogService.Toggle", keyAttrs(key.UserID, key.ActionType, key.TargetType, key.TargetID)...)
	defer func() { observability.EndSpan(span, err) }()

	if err := validateKind(key.ActionType, key.TargetType); err != nil {
		return nil, err
	}

	log = &models.ActionLog{
		UserID:     key.UserID,
		ActionType: key.ActionType,
		TargetType: key.TargetType,
		TargetID:   key.TargetID,
		CreatedAt:  s.now(),
	}
	err = s.write(ctx, log, func(ctx context.Context) (bool, error) {
		return true, s.repo.Toggle(ctx, log)
	})
	if err != nil {
		return nil, err
	}

	observability.ActionLogWrites.WithLabelValues("toggle", string(log.ActionType), string(log.TargetType)).Inc()
	span.SetAttributes(attribute.Bool("action.is_on", log.IsOn))
	return log, nil
}

// write runs op and, when the like counter is coupled for this user and op
// changed the active state, moves the post's like_count in the same
// transaction.
func (s *ActionLogService) write(ctx context.Context, log *models.ActionLog, op func(ctx context.Context) (bool, error)) error {
	if !s.couplesLikes(log) {
		_, err := op(ctx)
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		changed, err := op(ctx)
		if err != nil || !changed {
			return err
		}
		middleware.Logger.DebugContext(ctx, "syncing like counter",
			slog.Uint64("post_id", uint64(log.TargetID)),
			slog.Bool("is_on", log.IsOn),
		)
		return s.counters.OnLikeToggled(ctx, log.TargetID, log.IsOn)
	})
}

func (s *ActionLogService) couplesLikes(log *models.ActionLog) bool {
	return s.counters != nil && s.tx != nil && s.syncLikes != nil &&
		log.ActionType == models.ActionTypeLike &&
		log.TargetType == models.TargetTypePost &&
		s.syncLikes(log.UserID)
}

// Count returns how many users currently have actionType switched on for
// the target. It is independent of Post.like_count.
func (s *ActionLogService) Count(ctx context.Context, targetType models.TargetType, targetID uint, actionType models.ActionType) (n int64, err error) {
	ctx, span := observability.StartSpan(ctx, "ActionLogService.Count",
		attribute.String("action.target_type", string(targetType)),
		attribute.Int64("action.target_id", int64(targetID)),
		attribute.String("action.type", string(actionType)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err := validateKind(actionType, targetType); err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, targetType, targetID, actionType)
}

// ListForUser returns the user's logs newest first, optionally filtered by
// action type.
func (s *ActionLogService) ListForUser(ctx context.Context, userID uint, actionType *models.ActionType, skip, limit int) ([]models.ActionLog, error) {
	if actionType != nil && !actionType.Valid() {
		return nil, models.NewValidationError("Invalid action type")
	}
	return s.repo.ListByUser(ctx, userID, actionType, skip, limit)
}

// ListForTarget returns the logs on one target newest first, optionally
// filtered by action type.
func (s *ActionLogService) ListForTarget(ctx context.Context, targetType models.TargetType, targetID uint, actionType *models.ActionType, skip, limit int) ([]models.ActionLog, error) {
	if !targetType.Valid() {
		return nil, models.NewValidationError("Invalid target type")
	}
	if actionType != nil && !actionType.Valid() {
		return nil, models.NewValidationError("Invalid action type")
	}
	return s.repo.ListByTarget(ctx, targetType, targetID, actionType, skip, limit)
}

// Get returns one log by id.
func (s *ActionLogService) Get(ctx context.Context, id uint) (*models.ActionLog, error) {
	return s.repo.GetByID(ctx, id)
}

// RecordView marks that userID viewed a post. It satisfies ViewRecorder.
func (s *ActionLogService) RecordView(ctx context.Context, userID, postID uint) error {
	_, err := s.RecordOrUpdate(ctx, RecordActionInput{
		UserID:     userID,
		ActionType: models.ActionTypeView,
		TargetType: models.TargetTypePost,
		TargetID:   postID,
		IsOn:       true,
	})
	return err
}

func validateKind(actionType models.ActionType, targetType models.TargetType) error {
	if !actionType.Valid() {
		return models.NewValidationError("Invalid action type")
	}
	if !targetType.Valid() {
		return models.NewValidationError("Invalid target type")
	}
	return nil
}

func keyAttrs(userID uint, actionType models.ActionType, targetType models.TargetType, targetID uint) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("user.id", int64(userID)),
		attribute.String("action.type", string(actionType)),
		attribute.String("action.target_type", string(targetType)),
		attribute.Int64("action.target_id", int64(targetID)),
	}
}
