package repository

import (
	"context"
	"fmt"

	"gochurch/internal/models"

	"gorm.io/gorm"
)

// VerificationRepository stores identity verification requests.
type VerificationRepository interface {
	Create(ctx context.Context, v *models.IdentityVerification) error
	GetByID(ctx context.Context, id uint) (*models.IdentityVerification, error)
	ListByStatus(ctx context.Context, status models.VerificationStatus, offset, limit int) ([]models.IdentityVerification, error)
	ListByUser(ctx context.Context, userID uint) ([]models.IdentityVerification, error)
	UpdateReview(ctx context.Context, v *models.IdentityVerification) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, v *models.IdentityVerification) error {
	if err := conn(ctx, r.db).Create(v).Error; err != nil {
		return fmt.Errorf("create verification: %w", err)
	}
	return nil
}

func (r *verificationRepository) GetByID(ctx context.Context, id uint) (*models.IdentityVerification, error) {
	var v models.IdentityVerification
	if err := takeByID(conn(ctx, r.db), &v, "Verification", id); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListByStatus returns requests in the given state, oldest first so
// reviewers work through the queue in arrival order.
func (r *verificationRepository) ListByStatus(ctx context.Context, status models.VerificationStatus, offset, limit int) ([]models.IdentityVerification, error) {
	out := []models.IdentityVerification{}
	q := conn(ctx, r.db).Where("status = ?", status).Order("created_at ASC, id ASC")
	if err := page(q, offset, limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}
	return out, nil
}

// ListByUser returns a user's requests, newest first.
func (r *verificationRepository) ListByUser(ctx context.Context, userID uint) ([]models.IdentityVerification, error) {
	out := []models.IdentityVerification{}
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list verifications for user %d: %w", userID, err)
	}
	return out, nil
}

func (r *verificationRepository) UpdateReview(ctx context.Context, v *models.IdentityVerification) error {
	err := conn(ctx, r.db).Model(v).
		Select("status", "reviewed_by", "reviewed_at").
		Updates(v).Error
	if err != nil {
		return fmt.Errorf("update verification %d: %w", v.ID, err)
	}
	return nil
}
