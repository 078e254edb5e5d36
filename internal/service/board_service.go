package service

import (
	"context"
	"strings"

	"gochurch/internal/models"
	"gochurch/internal/repository"

	"github.com/jinzhu/copier"
)

type BoardService struct {
	boards repository.BoardRepository
}

type CreateBoardInput struct {
	Title       string
	Description string
}

// UpdateBoardInput carries a partial update; nil fields are left unchanged.
type UpdateBoardInput struct {
	Title       *string
	Description *string
}

func NewBoardService(boards repository.BoardRepository) *BoardService {
	return &BoardService{boards: boards}
}

func (s *BoardService) CreateBoard(ctx context.Context, in CreateBoardInput) (*models.Board, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	board := &models.Board{Title: strings.TrimSpace(in.Title), Description: in.Description}
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) GetBoard(ctx context.Context, id uint) (*models.Board, error) {
	return s.boards.GetByID(ctx, id)
}

func (s *BoardService) ListBoards(ctx context.Context, skip, limit int) ([]models.Board, error) {
	return s.boards.List(ctx, skip, limit)
}

func (s *BoardService) UpdateBoard(ctx context.Context, id uint, in UpdateBoardInput) (*models.Board, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, models.NewValidationError("Title cannot be empty")
	}
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(board, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.boards.Update(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// DeleteBoard removes the board and every post on it.
func (s *BoardService) DeleteBoard(ctx context.Context, id uint) error {
	return s.boards.Delete(ctx, id)
}
