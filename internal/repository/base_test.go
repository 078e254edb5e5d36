package repository

import (
	"context"
	"errors"
	"testing"

	"gochurch/internal/models"
	"gochurch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := NewTransactor(db)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "dave")
	board := testutil.CreateBoard(t, db, "General")
	post := testutil.CreatePost(t, db, board.ID, user.ID, "Hello")

	boom := errors.New("boom")
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, comments.Create(ctx, &models.Comment{PostID: post.ID, AuthorID: user.ID, Contents: "hi"}))
		_, err := posts.IncrementCommentCount(ctx, post.ID)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CommentCount)
	list, err := comments.ListByPost(ctx, post.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactor_NestedCallJoinsOuter(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := NewTransactor(db)
	boards := NewBoardRepository(db)
	ctx := context.Background()

	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		return tx.WithinTx(ctx, func(ctx context.Context) error {
			return boards.Create(ctx, &models.Board{Title: "Inner"})
		})
	})
	require.NoError(t, err)

	list, err := boards.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAfterCommit_RunsOnlyOnCommit(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := NewTransactor(db)
	ctx := context.Background()

	var ran []string
	afterCommit(ctx, func() { ran = append(ran, "direct") })
	assert.Equal(t, []string{"direct"}, ran)

	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		afterCommit(ctx, func() { ran = append(ran, "outer") })
		return tx.WithinTx(ctx, func(ctx context.Context) error {
			afterCommit(ctx, func() { ran = append(ran, "nested") })
			assert.Equal(t, []string{"direct"}, ran)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"direct", "outer", "nested"}, ran)

	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		afterCommit(ctx, func() { ran = append(ran, "rolled back") })
		return errors.New("abort")
	})
	require.Error(t, err)
	assert.Len(t, ran, 3)
}
