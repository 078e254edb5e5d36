package service

import (
	"context"
	"testing"

	"gochurch/internal/models"
	"gochurch/internal/repository"
	"gochurch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// counterSinkMock is a testify mock for CounterSink.
type counterSinkMock struct {
	mock.Mock
}

func (m *counterSinkMock) OnView(ctx context.Context, postID uint) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *counterSinkMock) OnLikeToggled(ctx context.Context, postID uint, on bool) error {
	return m.Called(ctx, postID, on).Error(0)
}

func (m *counterSinkMock) OnCommentCreated(ctx context.Context, postID uint) error {
	return m.Called(ctx, postID).Error(0)
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, models.IsCode(err, code), "want %s, got %v", code, err)
	}
}

type fixture struct {
	db   *gorm.DB
	user *models.User
	post *models.Post
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "member")
	board := testutil.CreateBoard(t, db, "General")
	post := testutil.CreatePost(t, db, board.ID, user.ID, "Welcome")
	return fixture{db: db, user: user, post: post}
}

func (f fixture) reloadPost(t *testing.T) *models.Post {
	t.Helper()
	post, err := repository.NewPostRepository(f.db).GetByID(context.Background(), f.post.ID)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	return post
}
