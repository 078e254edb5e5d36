package service

import (
	"context"
	"strings"
	"time"

	"gochurch/internal/models"
	"gochurch/internal/repository"
)

type VerificationService struct {
	verifications repository.VerificationRepository
	now           func() time.Time
}

type SubmitVerificationInput struct {
	UserID   uint
	PhotoURL string
	ChurchID *uint
}

type ReviewVerificationInput struct {
	Status     models.VerificationStatus
	ReviewedBy uint
}

func NewVerificationService(verifications repository.VerificationRepository) *VerificationService {
	return &VerificationService{
		verifications: verifications,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Submit opens a pending verification request.
func (s *VerificationService) Submit(ctx context.Context, in SubmitVerificationInput) (*models.IdentityVerification, error) {
	if strings.TrimSpace(in.PhotoURL) == "" {
		return nil, models.NewValidationError("Photo URL is required")
	}
	v := &models.IdentityVerification{
		UserID:   in.UserID,
		PhotoURL: strings.TrimSpace(in.PhotoURL),
		ChurchID: in.ChurchID,
		Status:   models.VerificationStatusPending,
	}
	if err := s.verifications.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VerificationService) Get(ctx context.Context, id uint) (*models.IdentityVerification, error) {
	return s.verifications.GetByID(ctx, id)
}

func (s *VerificationService) ListByStatus(ctx context.Context, status models.VerificationStatus, skip, limit int) ([]models.IdentityVerification, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid status")
	}
	return s.verifications.ListByStatus(ctx, status, skip, limit)
}

func (s *VerificationService) ListByUser(ctx context.Context, userID uint) ([]models.IdentityVerification, error) {
	return s.verifications.ListByUser(ctx, userID)
}

// Review sets the request's status and stamps the reviewer and time.
func (s *VerificationService) Review(ctx context.Context, id uint, in ReviewVerificationInput) (*models.IdentityVerification, error) {
	if !in.Status.Valid() {
		return nil, models.NewValidationError("Invalid status")
	}
	v, err := s.verifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reviewer := in.ReviewedBy
	v.Status = in.Status
	v.ReviewedBy = &reviewer
	v.ReviewedAt = &now
	if err := s.verifications.UpdateReview(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
