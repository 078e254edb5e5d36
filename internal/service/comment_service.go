package service

import (
	"context"
	"strings"

	"gochurch/internal/models"
	"gochurch/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	counters CounterSink
	tx       repository.Transactor
}

type CreateCommentInput struct {
	PostID   uint
	AuthorID uint
	Contents string
	ParentID *uint
}

func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	counters CounterSink,
	tx repository.Transactor,
) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		counters: counters,
		tx:       tx,
	}
}

// CreateComment stores the comment and bumps the post's comment_count in
// one transaction. A parent comment must belong to the same post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validateCommentContents(in.Contents); err != nil {
		return nil, err
	}
	if _, err := s.posts.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *in.ParentID)
		if err != nil {
			if models.IsCode(err, models.CodeNotFound) {
				return nil, models.NewValidationError("Parent comment not found")
			}
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Contents: in.Contents,
		ParentID: in.ParentID,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.comments.Create(ctx, comment); err != nil {
			return err
		}
		return s.counters.OnCommentCreated(ctx, in.PostID)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.comments.GetByID(ctx, id)
}

// ListComments returns a post's comments oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint, skip, limit int) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID, skip, limit)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, contents string) (*models.Comment, error) {
	if err := validateCommentContents(contents); err != nil {
		return nil, err
	}
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.Contents = contents
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func validateCommentContents(contents string) error {
	if strings.TrimSpace(contents) == "" {
		return models.NewValidationError("Contents is required")
	}
	if len(contents) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 10000 characters)")
	}
	return nil
}
