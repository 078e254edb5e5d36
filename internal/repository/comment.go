package repository

import (
	"context"
	"fmt"

	"gochurch/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint, offset, limit int) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := conn(ctx, r.db).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := takeByID(conn(ctx, r.db), &comment, "Comment", id); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns a post's comments in the order they were written.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint, offset, limit int) ([]models.Comment, error) {
	comments := []models.Comment{}
	q := conn(ctx, r.db).Where("post_id = ?", postID).Order("created_at ASC, id ASC")
	if err := page(q, offset, limit).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := conn(ctx, r.db).Model(comment).Update("contents", comment.Contents).Error; err != nil {
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}
	return nil
}
