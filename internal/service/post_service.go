package service

import (
	"context"
	"log/slog"
	"strings"

	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/repository"

	"github.com/jinzhu/copier"
)

const (
	maxTitleLen = 200
	maxTagLen   = 50
)

// ViewRecorder records that a signed-in user read a post.
type ViewRecorder interface {
	RecordView(ctx context.Context, userID, postID uint) error
}

type PostService struct {
	posts    repository.PostRepository
	boards   repository.BoardRepository
	tags     repository.TagRepository
	counters CounterSink

	views        ViewRecorder
	recordViewOf func(userID uint) bool
}

type CreatePostInput struct {
	BoardID  uint
	AuthorID uint
	Title    string
	Contents string
}

// UpdatePostInput carries a partial update; nil fields are left unchanged.
type UpdatePostInput struct {
	Title    *string
	Contents *string
}

func NewPostService(
	posts repository.PostRepository,
	boards repository.BoardRepository,
	tags repository.TagRepository,
	counters CounterSink,
) *PostService {
	return &PostService{
		posts:    posts,
		boards:   boards,
		tags:     tags,
		counters: counters,
	}
}

// WithViewLog makes GetPost record a view action for signed-in readers
// where enabled returns true.
func (s *PostService) WithViewLog(views ViewRecorder, enabled func(userID uint) bool) *PostService {
	s.views = views
	s.recordViewOf = enabled
	return s
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if strings.TrimSpace(in.Contents) == "" {
		return nil, models.NewValidationError("Contents is required")
	}
	if _, err := s.boards.GetByID(ctx, in.BoardID); err != nil {
		return nil, err
	}

	post := &models.Post{
		BoardID:  in.BoardID,
		AuthorID: in.AuthorID,
		Title:    title,
		Contents: in.Contents,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost counts a view and returns the post with the view included. Every
// call counts; there is no per-reader dedupe. viewerID is 0 for anonymous
// readers.
func (s *PostService) GetPost(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	if err := s.counters.OnView(ctx, id); err != nil {
		return nil, err
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && s.views != nil && s.recordViewOf != nil && s.recordViewOf(viewerID) {
		if err := s.views.RecordView(ctx, viewerID, id); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to record post view",
				slog.Uint64("post_id", uint64(id)),
				slog.String("error", err.Error()),
			)
		}
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, boardID uint, skip, limit int) ([]models.Post, error) {
	return s.posts.ListByBoard(ctx, boardID, skip, limit)
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(t) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		in.Title = &t
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(post, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.posts.Delete(ctx, id)
}

// LikePost raises like_count directly, for callers that decided a like
// happened without going through the action log.
func (s *PostService) LikePost(ctx context.Context, id uint) (*models.Post, error) {
	return s.adjustLikes(ctx, id, true)
}

// UnlikePost lowers like_count; it never drops below zero.
func (s *PostService) UnlikePost(ctx context.Context, id uint) (*models.Post, error) {
	return s.adjustLikes(ctx, id, false)
}

func (s *PostService) adjustLikes(ctx context.Context, id uint, on bool) (*models.Post, error) {
	if _, err := s.posts.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.counters.OnLikeToggled(ctx, id, on); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) AddTag(ctx context.Context, postID uint, tag string) (*models.PostTag, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, models.NewValidationError("Tag is required")
	}
	if len(tag) > maxTagLen {
		return nil, models.NewValidationError("Tag too long (max 50 characters)")
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	pt := &models.PostTag{PostID: postID, Tag: tag}
	if err := s.tags.Add(ctx, pt); err != nil {
		return nil, conflictOr(err, "Tag already exists for this post")
	}
	return pt, nil
}

func (s *PostService) ListTags(ctx context.Context, postID uint) ([]models.PostTag, error) {
	return s.tags.ListByPost(ctx, postID)
}

func (s *PostService) RemoveTag(ctx context.Context, postID uint, tag string) error {
	return s.tags.Remove(ctx, postID, tag)
}
