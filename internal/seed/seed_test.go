package seed

import (
	"context"
	"testing"

	"gochurch/internal/models"
	"gochurch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.Len(t, c.Boards, 8)
	assert.Equal(t, "General Discussion", c.Boards[0].Title)
	assert.Len(t, c.Churches, 8)
	assert.Len(t, c.Tags, 15)
	assert.Len(t, c.Posts, 15)
	assert.Len(t, c.Comments, 15)
	for _, tag := range c.Tags {
		assert.LessOrEqual(t, len(tag), 50)
	}
}

func TestBoards_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	first, err := Boards(ctx, db)
	require.NoError(t, err)
	second, err := Boards(ctx, db)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}

	var count int64
	require.NoError(t, db.Model(&models.Board{}).Count(&count).Error)
	assert.EqualValues(t, len(first), count)
}

func TestBoards_RefreshesDescription(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&models.Board{Title: "Prayer Requests", Description: "old"}).Error)

	_, err := Boards(ctx, db)
	require.NoError(t, err)

	var board models.Board
	require.NoError(t, db.Where("title = ?", "Prayer Requests").Take(&board).Error)
	assert.Equal(t, "Share your prayer requests with the community", board.Description)
}

func TestSeed_BuildsConsistentCommunity(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	summary, err := Seed(ctx, db, Options{Churches: 3, Users: 6, Posts: 10, Comments: 25, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Churches)
	assert.Equal(t, 6, summary.Users)
	assert.Equal(t, 6, summary.Profiles)
	assert.Equal(t, 8, summary.Boards)
	assert.Equal(t, 10, summary.Posts)
	assert.Equal(t, 25, summary.Comments)
	assert.GreaterOrEqual(t, summary.Tags, 10)
	assert.LessOrEqual(t, summary.Tags, 30)
	assert.Equal(t, 6, summary.Verifications)
	assert.Positive(t, summary.Actions)

	var admin models.User
	require.NoError(t, db.Order("id").First(&admin).Error)
	assert.True(t, admin.IsAdmin)
	assert.False(t, admin.IsBlocked)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(SamplePassword)))

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	total := 0
	for _, p := range posts {
		var n int64
		require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", p.ID).Count(&n).Error)
		assert.EqualValues(t, n, p.CommentCount, "post %d", p.ID)
		assert.GreaterOrEqual(t, p.ViewCount, 5)
		total += p.CommentCount
	}
	assert.Equal(t, 25, total)

	var blockedAuthors int64
	require.NoError(t, db.Model(&models.Post{}).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("users.is_blocked = ?", true).
		Count(&blockedAuthors).Error)
	assert.Zero(t, blockedAuthors)

	var commentViews int64
	require.NoError(t, db.Model(&models.ActionLog{}).
		Where("target_type = ? AND action_type IN ?", models.TargetTypeComment,
			[]models.ActionType{models.ActionTypeView, models.ActionTypeBookmark}).
		Count(&commentViews).Error)
	assert.Zero(t, commentViews)
}

func TestSeed_CleanReplacesPreviousRun(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := Seed(ctx, db, Options{Users: 4, Posts: 3, Comments: 2})
	require.NoError(t, err)

	summary, err := Seed(ctx, db, Options{Users: 4, Posts: 3, Comments: 2, Clean: true})
	require.NoError(t, err)
	assert.EqualValues(t, 4, summary.Cleared["users"])
	assert.EqualValues(t, 3, summary.Cleared["posts"])

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 4, users)
}

func TestClearAll_KeepsOperatorState(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "gail")
	board := testutil.CreateBoard(t, db, "Notices")
	testutil.CreatePost(t, db, board.ID, user.ID, "Hello")
	require.NoError(t, db.Create(&models.SystemSetting{Key: "site_name", Value: "Grace", Category: "general"}).Error)
	require.NoError(t, db.Create(&models.TaskResult{ID: "t-1", Name: "cleanup", Status: models.TaskStatusRunning}).Error)

	deleted, err := ClearAll(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted["users"])
	assert.EqualValues(t, 1, deleted["posts"])
	assert.EqualValues(t, 1, deleted["boards"])
	assert.Contains(t, deleted, "action_logs")

	var n int64
	require.NoError(t, db.Model(&models.SystemSetting{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, db.Model(&models.TaskResult{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestOptions_WithDefaults(t *testing.T) {
	got := Options{Posts: 7, Comments: -1}.withDefaults()
	assert.Equal(t, 5, got.Churches)
	assert.Equal(t, 20, got.Users)
	assert.Equal(t, 7, got.Posts)
	assert.Equal(t, 0, got.Comments)
}
