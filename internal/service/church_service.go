package service

import (
	"context"
	"strings"

	"gochurch/internal/models"
	"gochurch/internal/repository"

	"github.com/jinzhu/copier"
)

type ChurchService struct {
	churches repository.ChurchRepository
}

type CreateChurchInput struct {
	Name        string
	Address     string
	PhoneNumber string
}

// UpdateChurchInput carries a partial update; nil fields are left unchanged.
type UpdateChurchInput struct {
	Name        *string
	Address     *string
	PhoneNumber *string
}

func NewChurchService(churches repository.ChurchRepository) *ChurchService {
	return &ChurchService{churches: churches}
}

func (s *ChurchService) CreateChurch(ctx context.Context, in CreateChurchInput) (*models.Church, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}
	church := &models.Church{}
	if err := copier.Copy(church, &in); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.churches.Create(ctx, church); err != nil {
		return nil, err
	}
	return church, nil
}

func (s *ChurchService) GetChurch(ctx context.Context, id uint) (*models.Church, error) {
	return s.churches.GetByID(ctx, id)
}

func (s *ChurchService) ListChurches(ctx context.Context, skip, limit int) ([]models.Church, error) {
	return s.churches.List(ctx, skip, limit)
}

func (s *ChurchService) UpdateChurch(ctx context.Context, id uint, in UpdateChurchInput) (*models.Church, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, models.NewValidationError("Name cannot be empty")
	}
	church, err := s.churches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(church, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.churches.Update(ctx, church); err != nil {
		return nil, err
	}
	return church, nil
}

func (s *ChurchService) DeleteChurch(ctx context.Context, id uint) error {
	return s.churches.Delete(ctx, id)
}
