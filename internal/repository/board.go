package repository

import (
	"context"
	"fmt"

	"gochurch/internal/cache"
	"gochurch/internal/models"

	"gorm.io/gorm"
)

// BoardRepository defines persistence operations for boards.
type BoardRepository interface {
	Create(ctx context.Context, board *models.Board) error
	GetByID(ctx context.Context, id uint) (*models.Board, error)
	List(ctx context.Context, offset, limit int) ([]models.Board, error)
	Update(ctx context.Context, board *models.Board) error
	Delete(ctx context.Context, id uint) error
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, board *models.Board) error {
	if err := conn(ctx, r.db).Create(board).Error; err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	return nil
}

func (r *boardRepository) GetByID(ctx context.Context, id uint) (*models.Board, error) {
	var board models.Board
	err := cache.Aside(ctx, cache.BoardKey(id), &board, cache.BoardTTL, func() error {
		return takeByID(conn(ctx, r.db), &board, "Board", id)
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) List(ctx context.Context, offset, limit int) ([]models.Board, error) {
	boards := []models.Board{}
	if err := page(conn(ctx, r.db).Order("id ASC"), offset, limit).Find(&boards).Error; err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (r *boardRepository) Update(ctx context.Context, board *models.Board) error {
	err := conn(ctx, r.db).Model(board).
		Select("title", "description").
		Updates(board).Error
	if err != nil {
		return fmt.Errorf("update board %d: %w", board.ID, err)
	}
	cache.Invalidate(ctx, cache.BoardKey(board.ID))
	return nil
}

// Delete removes the board. Its posts go with it through the foreign key
// cascade; SQLite without foreign keys enforced gets an explicit delete.
func (r *boardRepository) Delete(ctx context.Context, id uint) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Board{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Board", nil)
		}
		return tx.Where("board_id = ?", id).Delete(&models.Post{}).Error
	})
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			return err
		}
		return fmt.Errorf("delete board %d: %w", id, err)
	}
	cache.Invalidate(ctx, cache.BoardKey(id))
	return nil
}
