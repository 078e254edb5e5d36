package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"gochurch/internal/config"
	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

type testEnv struct {
	srv *Server
	app *fiber.App
	db  *gorm.DB
	rdb *redis.Client
}

func newTestEnv(t *testing.T, flags string) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Env:          "test",
		JWTSecret:    testSecret,
		FeatureFlags: flags,
	}
	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.tasks.Shutdown(context.Background()) })

	app := fiber.New()
	srv.SetupRoutes(app)
	return &testEnv{srv: srv, app: app, db: db, rdb: rdb}
}

func (e *testEnv) do(t *testing.T, method, path, body string, token ...string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token[0])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func tokenFor(t *testing.T, userID uint) string {
	t.Helper()
	tok, _, err := middleware.SignToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return tok
}

// --- action logs ---

func TestRecordAction_RejectsUnknownTypes(t *testing.T) {
	env := newTestEnv(t, "")

	status, raw := env.do(t, http.MethodPost, "/api/actions/",
		`{"user_id":1,"action_type":"dislike","target_type":"post","target_id":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid action type", decode[models.ErrorResponse](t, raw).Error)

	status, _ = env.do(t, http.MethodPost, "/api/actions/toggle?user_id=1&action_type=like&target_type=board&target_id=1", "")
	assert.Equal(t, http.StatusBadRequest, status)

	var n int64
	require.NoError(t, env.db.Model(&models.ActionLog{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRecordAction_UpsertsOneRow(t *testing.T) {
	env := newTestEnv(t, "")

	status, raw := env.do(t, http.MethodPost, "/api/actions/",
		`{"user_id":1,"action_type":"bookmark","target_type":"post","target_id":9}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	first := decode[models.ActionLog](t, raw)
	assert.True(t, first.IsOn, "is_on defaults to true")

	status, raw = env.do(t, http.MethodPost, "/api/actions/",
		`{"user_id":1,"action_type":"bookmark","target_type":"post","target_id":9,"is_on":false}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	second := decode[models.ActionLog](t, raw)
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.IsOn)

	var n int64
	require.NoError(t, env.db.Model(&models.ActionLog{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestToggleAction_CountFollowsState(t *testing.T) {
	env := newTestEnv(t, "")
	const toggle = "/api/actions/toggle?user_id=4&action_type=like&target_type=comment&target_id=2"
	const count = "/api/actions/count/comment/2/like"

	for _, want := range []float64{1, 0, 1} {
		status, raw := env.do(t, http.MethodPost, toggle, "")
		require.Equal(t, http.StatusCreated, status, string(raw))

		status, raw = env.do(t, http.MethodGet, count, "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, want, decode[map[string]float64](t, raw)["count"])
	}
}

func TestActionCount_InvalidPathValues(t *testing.T) {
	env := newTestEnv(t, "")

	status, _ := env.do(t, http.MethodGet, "/api/actions/count/board/1/like", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = env.do(t, http.MethodGet, "/api/actions/count/post/1/dislike", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetAction_NotFound(t *testing.T) {
	env := newTestEnv(t, "")

	status, raw := env.do(t, http.MethodGet, "/api/actions/999", "")
	assert.Equal(t, http.StatusNotFound, status)
	body := decode[models.ErrorResponse](t, raw)
	assert.Equal(t, "Action log not found", body.Error)
	assert.Equal(t, models.CodeNotFound, body.Code)
}

func TestListActions_FiltersAndOrders(t *testing.T) {
	env := newTestEnv(t, "")
	base := time.Now().UTC().Add(-time.Hour)
	rows := []models.ActionLog{
		{UserID: 1, ActionType: models.ActionTypeView, TargetType: models.TargetTypePost, TargetID: 1, IsOn: true, CreatedAt: base},
		{UserID: 1, ActionType: models.ActionTypeLike, TargetType: models.TargetTypePost, TargetID: 1, IsOn: true, CreatedAt: base.Add(time.Minute)},
		{UserID: 2, ActionType: models.ActionTypeLike, TargetType: models.TargetTypePost, TargetID: 1, IsOn: false, CreatedAt: base.Add(2 * time.Minute)},
	}
	require.NoError(t, env.db.Create(&rows).Error)

	status, raw := env.do(t, http.MethodGet, "/api/actions/user/1", "")
	require.Equal(t, http.StatusOK, status)
	logs := decode[[]models.ActionLog](t, raw)
	require.Len(t, logs, 2)
	assert.Equal(t, models.ActionTypeLike, logs[0].ActionType, "newest first")

	status, raw = env.do(t, http.MethodGet, "/api/actions/target/post/1?action_type=like&limit=1", "")
	require.Equal(t, http.StatusOK, status)
	logs = decode[[]models.ActionLog](t, raw)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(2), logs[0].UserID)

	status, _ = env.do(t, http.MethodGet, "/api/actions/user/1?action_type=share", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestToggleLike_SyncsCounterWhenFlagged(t *testing.T) {
	env := newTestEnv(t, "like_counter_sync=on")
	user := testutil.CreateUser(t, env.db, "ruth")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")

	toggle := "/api/actions/toggle?action_type=like&target_type=post&user_id=" + itoa(user.ID) + "&target_id=" + itoa(post.ID)
	status, _ := env.do(t, http.MethodPost, toggle, "")
	require.Equal(t, http.StatusCreated, status)

	var got models.Post
	require.NoError(t, env.db.First(&got, post.ID).Error)
	assert.Equal(t, 1, got.LikeCount)

	status, _ = env.do(t, http.MethodPost, toggle, "")
	require.Equal(t, http.StatusCreated, status)
	require.NoError(t, env.db.First(&got, post.ID).Error)
	assert.Equal(t, 0, got.LikeCount)
}

// --- boards, posts, comments, tags ---

func TestBoardLifecycle(t *testing.T) {
	env := newTestEnv(t, "")

	status, raw := env.do(t, http.MethodPost, "/api/boards/", `{"title":"Prayer Requests","description":"Share"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	board := decode[models.Board](t, raw)

	status, raw = env.do(t, http.MethodPut, "/api/boards/"+itoa(board.ID), `{"description":"Updated"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	updated := decode[models.Board](t, raw)
	assert.Equal(t, "Prayer Requests", updated.Title)
	assert.Equal(t, "Updated", updated.Description)

	status, _ = env.do(t, http.MethodPost, "/api/boards/", `{"description":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodDelete, "/api/boards/"+itoa(board.ID), "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = env.do(t, http.MethodDelete, "/api/boards/"+itoa(board.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreatePost_RequiresBoardAndAuthorID(t *testing.T) {
	env := newTestEnv(t, "")
	user := testutil.CreateUser(t, env.db, "paul")

	status, _ := env.do(t, http.MethodPost, "/api/boards/77/posts?author_id="+itoa(user.ID), `{"title":"t","contents":"c"}`)
	assert.Equal(t, http.StatusNotFound, status)

	board := testutil.CreateBoard(t, env.db, "General")
	status, _ = env.do(t, http.MethodPost, "/api/boards/"+itoa(board.ID)+"/posts", `{"title":"t","contents":"c"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw := env.do(t, http.MethodPost, "/api/boards/"+itoa(board.ID)+"/posts?author_id="+itoa(user.ID), `{"title":"t","contents":"c"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	post := decode[models.Post](t, raw)
	assert.Zero(t, post.ViewCount)
	assert.Zero(t, post.LikeCount)
	assert.Zero(t, post.CommentCount)
}

func TestGetPost_CountsEveryRead(t *testing.T) {
	env := newTestEnv(t, "")
	user := testutil.CreateUser(t, env.db, "lydia")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")

	for want := 1; want <= 2; want++ {
		status, raw := env.do(t, http.MethodGet, "/api/boards/posts/"+itoa(post.ID), "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, want, decode[models.Post](t, raw).ViewCount)
	}

	status, _ := env.do(t, http.MethodGet, "/api/boards/posts/12345", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetPost_RecordsViewLogForSignedInReader(t *testing.T) {
	env := newTestEnv(t, "view_action_log=on")
	user := testutil.CreateUser(t, env.db, "silas")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")

	status, _ := env.do(t, http.MethodGet, "/api/boards/posts/"+itoa(post.ID), "", tokenFor(t, user.ID))
	require.Equal(t, http.StatusOK, status)

	var log models.ActionLog
	require.NoError(t, env.db.Where("user_id = ? AND target_id = ?", user.ID, post.ID).Take(&log).Error)
	assert.Equal(t, models.ActionTypeView, log.ActionType)
	assert.True(t, log.IsOn)
}

func TestGetPost_RevokedTokenSkipsViewLog(t *testing.T) {
	env := newTestEnv(t, "view_action_log=on")
	user := testutil.CreateUser(t, env.db, "tabitha")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")

	tok, claims, err := middleware.SignToken(testSecret, user.ID, time.Hour)
	require.NoError(t, err)
	require.NoError(t, env.rdb.Set(context.Background(), middleware.RevocationKey(claims.ID), "1", time.Hour).Err())

	status, _ := env.do(t, http.MethodGet, "/api/boards/posts/"+itoa(post.ID), "", tok)
	require.Equal(t, http.StatusOK, status)

	var logs int64
	require.NoError(t, env.db.Model(&models.ActionLog{}).Where("user_id = ?", user.ID).Count(&logs).Error)
	assert.Zero(t, logs)
}

func TestCreateComment_BumpsCommentCount(t *testing.T) {
	env := newTestEnv(t, "")
	user := testutil.CreateUser(t, env.db, "martha")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")
	path := "/api/boards/posts/" + itoa(post.ID) + "/comments?author_id=" + itoa(user.ID)

	status, raw := env.do(t, http.MethodPost, path, `{"contents":"Amen"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	parent := decode[models.Comment](t, raw)

	status, raw = env.do(t, http.MethodPost, path, `{"contents":"Reply","parent_id":`+itoa(parent.ID)+`}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var got models.Post
	require.NoError(t, env.db.First(&got, post.ID).Error)
	assert.Equal(t, 2, got.CommentCount)

	status, raw = env.do(t, http.MethodGet, "/api/boards/posts/"+itoa(post.ID)+"/comments", "")
	require.Equal(t, http.StatusOK, status)
	comments := decode[[]models.Comment](t, raw)
	require.Len(t, comments, 2)
	assert.Equal(t, "Amen", comments[0].Contents, "oldest first")

	status, _ = env.do(t, http.MethodPost, "/api/boards/posts/999/comments?author_id="+itoa(user.ID), `{"contents":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLikeEndpoints_NeverGoNegative(t *testing.T) {
	env := newTestEnv(t, "")
	user := testutil.CreateUser(t, env.db, "anna")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")
	like := "/api/boards/posts/" + itoa(post.ID) + "/like"

	status, raw := env.do(t, http.MethodDelete, like, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, decode[models.Post](t, raw).LikeCount)

	status, raw = env.do(t, http.MethodPost, like, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, decode[models.Post](t, raw).LikeCount)
}

func TestTags_DuplicateConflicts(t *testing.T) {
	env := newTestEnv(t, "")
	user := testutil.CreateUser(t, env.db, "tim")
	board := testutil.CreateBoard(t, env.db, "General")
	post := testutil.CreatePost(t, env.db, board.ID, user.ID, "Hello")
	tags := "/api/boards/posts/" + itoa(post.ID) + "/tags"

	status, _ := env.do(t, http.MethodPost, tags+"?tag=prayer", "")
	require.Equal(t, http.StatusCreated, status)
	status, raw := env.do(t, http.MethodPost, tags+"?tag=prayer", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, models.CodeConflict, decode[models.ErrorResponse](t, raw).Code)

	status, _ = env.do(t, http.MethodPost, "/api/boards/posts/999/tags?tag=prayer", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.do(t, http.MethodDelete, tags+"/prayer", "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = env.do(t, http.MethodDelete, tags+"/prayer", "")
	assert.Equal(t, http.StatusNotFound, status)
}

// --- users, verifications ---

func TestCreateUser_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t, "")
	body := `{"email":"ruth@example.org","username":"ruth"}`

	status, raw := env.do(t, http.MethodPost, "/api/users/", body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	assert.NotContains(t, string(raw), "password")

	status, _ = env.do(t, http.MethodPost, "/api/users/", body)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = env.do(t, http.MethodPost, "/api/users/", `{"email":"not-an-email","username":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.do(t, http.MethodPost, "/api/users/", `{"email":"naomi@example.org","username":"naomi!"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "username must be")
}

func TestVerifications_ReviewFlow(t *testing.T) {
	env := newTestEnv(t, "")
	user := testutil.CreateUser(t, env.db, "joanna")
	admin := testutil.CreateUser(t, env.db, "admin")

	status, raw := env.do(t, http.MethodPost, "/api/verifications/",
		`{"user_id":`+itoa(user.ID)+`,"photo_url":"https://example.org/id.png"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	v := decode[models.IdentityVerification](t, raw)
	assert.Equal(t, models.VerificationStatusPending, v.Status)

	status, raw = env.do(t, http.MethodGet, "/api/verifications/pending", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.IdentityVerification](t, raw), 1)

	status, _ = env.do(t, http.MethodPut, "/api/verifications/"+itoa(v.ID)+"/status",
		`{"status":"maybe","reviewed_by":`+itoa(admin.ID)+`}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.do(t, http.MethodPut, "/api/verifications/"+itoa(v.ID)+"/status",
		`{"status":"approved","reviewed_by":`+itoa(admin.ID)+`}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	reviewed := decode[models.IdentityVerification](t, raw)
	assert.Equal(t, models.VerificationStatusApproved, reviewed.Status)
	assert.NotNil(t, reviewed.ReviewedAt)

	status, _ = env.do(t, http.MethodGet, "/api/verifications/status/unknown", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

// --- auth, settings, admin ---

func createLoginUser(t *testing.T, db *gorm.DB, email, password string, admin bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Email: email, Username: strings.Split(email, "@")[0], PasswordHash: string(hash), IsAdmin: admin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestAuth_LoginMeLogout(t *testing.T) {
	env := newTestEnv(t, "")
	createLoginUser(t, env.db, "lois@example.org", "Str0ng!Passw0rd", false)

	status, _ := env.do(t, http.MethodPost, "/api/auth/login", `{"email":"lois@example.org","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := env.do(t, http.MethodPost, "/api/auth/login", `{"email":"lois@example.org","password":"Str0ng!Passw0rd"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	tok := decode[map[string]any](t, raw)
	assert.Equal(t, "bearer", tok["token_type"])
	access, _ := tok["access_token"].(string)
	require.NotEmpty(t, access)

	status, raw = env.do(t, http.MethodGet, "/api/auth/me", "", access)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "lois@example.org", decode[models.User](t, raw).Email)

	status, _ = env.do(t, http.MethodPost, "/api/auth/logout", "", access)
	require.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodGet, "/api/auth/me", "", access)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSettings_UserAndSystem(t *testing.T) {
	env := newTestEnv(t, "")
	member := createLoginUser(t, env.db, "member@example.org", "Str0ng!Passw0rd", false)
	admin := createLoginUser(t, env.db, "admin@example.org", "Str0ng!Passw0rd", true)

	status, _ := env.do(t, http.MethodGet, "/api/settings/user", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := env.do(t, http.MethodPut, "/api/settings/user", `{"theme":"dark"}`, tokenFor(t, member.ID))
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "dark", decode[models.UserSettings](t, raw).Theme)

	setting := `{"key":"site_name","value":"GoChurch","is_public":true}`
	status, _ = env.do(t, http.MethodPost, "/api/settings/system", setting, tokenFor(t, member.ID))
	assert.Equal(t, http.StatusForbidden, status)

	status, raw = env.do(t, http.MethodPost, "/api/settings/system", setting, tokenFor(t, admin.ID))
	require.Equal(t, http.StatusCreated, status, string(raw))
	status, _ = env.do(t, http.MethodPost, "/api/settings/system", setting, tokenFor(t, admin.ID))
	assert.Equal(t, http.StatusConflict, status)

	status, raw = env.do(t, http.MethodGet, "/api/settings/system/public", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "GoChurch", decode[map[string]string](t, raw)["site_name"])

	status, raw = env.do(t, http.MethodPost, "/api/settings/notifications/defaults", "", tokenFor(t, member.ID))
	require.Equal(t, http.StatusCreated, status, string(raw))
	assert.Len(t, decode[[]models.NotificationSetting](t, raw), 6)
}

func TestFeatureFlags_AdminOnly(t *testing.T) {
	env := newTestEnv(t, "like_counter_sync=on")
	member := createLoginUser(t, env.db, "member@example.org", "Str0ng!Passw0rd", false)
	admin := createLoginUser(t, env.db, "admin@example.org", "Str0ng!Passw0rd", true)

	status, _ := env.do(t, http.MethodGet, "/api/admin/feature-flags", "", tokenFor(t, member.ID))
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := env.do(t, http.MethodGet, "/api/admin/feature-flags", "", tokenFor(t, admin.ID))
	require.Equal(t, http.StatusOK, status)
	body := decode[struct {
		Raw       map[string]string `json:"raw"`
		Evaluated map[string]bool   `json:"evaluated"`
	}](t, raw)
	assert.Equal(t, "on", body.Raw["like_counter_sync"])
	assert.True(t, body.Evaluated["like_counter_sync"])
	assert.False(t, body.Evaluated["view_action_log"])
}

// --- tasks ---

func TestTasks_SampleDataRunsInBackground(t *testing.T) {
	env := newTestEnv(t, "")

	status, raw := env.do(t, http.MethodPost, "/api/tasks/sample-data", `{"churches":2,"users":3,"posts":2,"comments":3}`)
	require.Equal(t, http.StatusAccepted, status, string(raw))
	id := decode[map[string]string](t, raw)["task_id"]
	require.NotEmpty(t, id)

	env.srv.tasks.Wait()

	status, raw = env.do(t, http.MethodGet, "/api/tasks/"+id, "")
	require.Equal(t, http.StatusOK, status)
	task := decode[models.TaskResult](t, raw)
	assert.Equal(t, models.TaskStatusSuccess, task.Status, task.Error)

	var posts int64
	require.NoError(t, env.db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 2, posts)

	status, _ = env.do(t, http.MethodGet, "/api/tasks/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTasks_HiddenInProduction(t *testing.T) {
	db := testutil.NewTestDB(t)
	srv, err := NewServerWithDeps(&config.Config{Env: "production", JWTSecret: testSecret}, db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.tasks.Shutdown(context.Background()) })
	app := fiber.New()
	srv.SetupRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/tasks/cleanup", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
