package repository

import (
	"context"
	"fmt"

	"gochurch/internal/models"

	"gorm.io/gorm"
)

// TagRepository stores the tags attached to posts.
type TagRepository interface {
	Add(ctx context.Context, tag *models.PostTag) error
	ListByPost(ctx context.Context, postID uint) ([]models.PostTag, error)
	Remove(ctx context.Context, postID uint, tag string) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Add inserts the tag. A duplicate surfaces as the driver's unique
// violation, see database.IsUniqueViolation.
func (r *tagRepository) Add(ctx context.Context, tag *models.PostTag) error {
	if err := conn(ctx, r.db).Create(tag).Error; err != nil {
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

func (r *tagRepository) ListByPost(ctx context.Context, postID uint) ([]models.PostTag, error) {
	tags := []models.PostTag{}
	if err := conn(ctx, r.db).Where("post_id = ?", postID).Order("tag").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) Remove(ctx context.Context, postID uint, tag string) error {
	res := conn(ctx, r.db).Where("post_id = ? AND tag = ?", postID, tag).Delete(&models.PostTag{})
	if res.Error != nil {
		return fmt.Errorf("remove tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", nil)
	}
	return nil
}
