package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"gochurch/internal/models"
	"gochurch/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestPostRepository_DecrementLikeCountIsGuarded(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "like_count"=like_count - 1 WHERE id = $1 AND like_count > 0`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	touched, err := repo.DecrementLikeCount(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, touched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_IncrementViewCountSingleStatement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "view_count"=view_count + 1 WHERE id = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	touched, err := repo.IncrementViewCount(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, touched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CounterDatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.IncrementCommentCount(context.Background(), 3)
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Counters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "alice")
	board := testutil.CreateBoard(t, db, "General")
	post := testutil.CreatePost(t, db, board.ID, user.ID, "Hello")

	touched, err := repo.DecrementLikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, touched)

	for i := 0; i < 2; i++ {
		_, err = repo.IncrementLikeCount(ctx, post.ID)
		require.NoError(t, err)
		_, err = repo.IncrementViewCount(ctx, post.ID)
		require.NoError(t, err)
	}
	_, err = repo.IncrementCommentCount(ctx, post.ID)
	require.NoError(t, err)
	touched, err = repo.DecrementLikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, touched)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, 2, got.ViewCount)
	assert.Equal(t, 1, got.CommentCount)

	touched, err = repo.IncrementViewCount(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, touched)
}

func TestPostRepository_UpdateLeavesCounters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "bob")
	board := testutil.CreateBoard(t, db, "General")
	post := testutil.CreatePost(t, db, board.ID, user.ID, "Draft")

	stale := *post
	_, err := repo.IncrementLikeCount(ctx, post.ID)
	require.NoError(t, err)

	stale.Title = "Final"
	require.NoError(t, repo.Update(ctx, &stale))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, 1, got.LikeCount)
}

func TestPostRepository_ListByBoardNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	clock := testutil.NewClock()
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "carol")
	board := testutil.CreateBoard(t, db, "General")
	other := testutil.CreateBoard(t, db, "Other")
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &models.Post{BoardID: board.ID, AuthorID: user.ID, Title: title, Contents: title, CreatedAt: clock.Now()}))
	}
	testutil.CreatePost(t, db, other.ID, user.ID, "elsewhere")

	posts, err := repo.ListByBoard(ctx, board.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{posts[0].Title, posts[1].Title, posts[2].Title})

	posts, err = repo.ListByBoard(ctx, board.ID, 2, 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Title)
}

func TestPostRepository_DeleteMissing(t *testing.T) {
	repo := NewPostRepository(testutil.NewTestDB(t))
	err := repo.Delete(context.Background(), 42)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}
