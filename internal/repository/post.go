package repository

import (
	"context"
	"fmt"

	"gochurch/internal/models"
	"gochurch/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. The
// counter methods are single UPDATE statements and report whether a row
// was touched.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByBoard(ctx context.Context, boardID uint, offset, limit int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IncrementViewCount(ctx context.Context, id uint) (bool, error)
	IncrementLikeCount(ctx context.Context, id uint) (bool, error)
	DecrementLikeCount(ctx context.Context, id uint) (bool, error)
	IncrementCommentCount(ctx context.Context, id uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := conn(ctx, r.db).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("get", "posts")()

	var post models.Post
	if err := takeByID(conn(ctx, r.db), &post, "Post", id); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByBoard returns a board's posts, newest first.
func (r *postRepository) ListByBoard(ctx context.Context, boardID uint, offset, limit int) ([]models.Post, error) {
	defer observability.TrackQuery("list_by_board", "posts")()

	posts := []models.Post{}
	q := conn(ctx, r.db).Where("board_id = ?", boardID).Order("created_at DESC, id DESC")
	if err := page(q, offset, limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Update writes the editable columns. Counters are left to the counter
// methods so a stale copy can never overwrite them.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := conn(ctx, r.db).Model(post).
		Select("title", "contents", "updated_at").
		Updates(post).Error
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&models.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", nil)
	}
	return nil
}

func (r *postRepository) IncrementViewCount(ctx context.Context, id uint) (bool, error) {
	return r.bump(ctx, id, "view_count", 1)
}

func (r *postRepository) IncrementLikeCount(ctx context.Context, id uint) (bool, error) {
	return r.bump(ctx, id, "like_count", 1)
}

// DecrementLikeCount lowers like_count by one unless it is already zero.
func (r *postRepository) DecrementLikeCount(ctx context.Context, id uint) (bool, error) {
	return r.bump(ctx, id, "like_count", -1)
}

func (r *postRepository) IncrementCommentCount(ctx context.Context, id uint) (bool, error) {
	return r.bump(ctx, id, "comment_count", 1)
}

func (r *postRepository) bump(ctx context.Context, id uint, column string, delta int) (bool, error) {
	defer observability.TrackQuery("counter", "posts")()

	q := conn(ctx, r.db).Model(&models.Post{}).Where("id = ?", id)
	expr := gorm.Expr(column + " + 1")
	if delta < 0 {
		q = q.Where(column + " > 0")
		expr = gorm.Expr(column + " - 1")
	}
	res := q.UpdateColumn(column, expr)
	if res.Error != nil {
		return false, fmt.Errorf("update post %d %s: %w", id, column, res.Error)
	}
	return res.RowsAffected > 0, nil
}
