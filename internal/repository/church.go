package repository

import (
	"context"
	"fmt"

	"gochurch/internal/cache"
	"gochurch/internal/models"

	"gorm.io/gorm"
)

// ChurchRepository defines persistence operations for churches.
type ChurchRepository interface {
	Create(ctx context.Context, church *models.Church) error
	GetByID(ctx context.Context, id uint) (*models.Church, error)
	List(ctx context.Context, offset, limit int) ([]models.Church, error)
	Update(ctx context.Context, church *models.Church) error
	Delete(ctx context.Context, id uint) error
}

type churchRepository struct {
	db *gorm.DB
}

func NewChurchRepository(db *gorm.DB) ChurchRepository {
	return &churchRepository{db: db}
}

func (r *churchRepository) Create(ctx context.Context, church *models.Church) error {
	if err := conn(ctx, r.db).Create(church).Error; err != nil {
		return fmt.Errorf("create church: %w", err)
	}
	return nil
}

func (r *churchRepository) GetByID(ctx context.Context, id uint) (*models.Church, error) {
	var church models.Church
	err := cache.Aside(ctx, cache.ChurchKey(id), &church, cache.ChurchTTL, func() error {
		return takeByID(conn(ctx, r.db), &church, "Church", id)
	})
	if err != nil {
		return nil, err
	}
	return &church, nil
}

func (r *churchRepository) List(ctx context.Context, offset, limit int) ([]models.Church, error) {
	churches := []models.Church{}
	if err := page(conn(ctx, r.db).Order("id ASC"), offset, limit).Find(&churches).Error; err != nil {
		return nil, fmt.Errorf("list churches: %w", err)
	}
	return churches, nil
}

func (r *churchRepository) Update(ctx context.Context, church *models.Church) error {
	if err := conn(ctx, r.db).Save(church).Error; err != nil {
		return fmt.Errorf("update church %d: %w", church.ID, err)
	}
	cache.Invalidate(ctx, cache.ChurchKey(church.ID))
	return nil
}

func (r *churchRepository) Delete(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&models.Church{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete church %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Church", nil)
	}
	cache.Invalidate(ctx, cache.ChurchKey(id))
	return nil
}
