package bootstrap

import (
	"context"
	"testing"

	"gochurch/internal/config"
	"gochurch/internal/models"
	"gochurch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const devPassword = "Str0ng!Passw0rd"

func devConfig() *config.Config {
	return &config.Config{
		Env:               "development",
		DevBootstrapAdmin: true,
		DevAdminEmail:     " Admin@GoChurch.local ",
		DevAdminPassword:  devPassword,
	}
}

func TestEnsureDevAdmin_CreatesAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, ensureDevAdmin(context.Background(), devConfig(), db))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@gochurch.local").Take(&admin).Error)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(devPassword)))
}

func TestEnsureDevAdmin_PromotesExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	existing := models.User{Email: "admin@gochurch.local", Username: "pat", IsBlocked: true}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, ensureDevAdmin(context.Background(), devConfig(), db))
	require.NoError(t, ensureDevAdmin(context.Background(), devConfig(), db))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, existing.ID, users[0].ID)
	assert.Equal(t, "pat", users[0].Username)
	assert.True(t, users[0].IsAdmin)
	assert.False(t, users[0].IsBlocked)
}

func TestEnsureDevAdmin_Skipped(t *testing.T) {
	db := testutil.NewTestDB(t)

	prod := devConfig()
	prod.Env = "production"
	require.NoError(t, ensureDevAdmin(context.Background(), prod, db))

	off := devConfig()
	off.DevBootstrapAdmin = false
	require.NoError(t, ensureDevAdmin(context.Background(), off, db))

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestEnsureDevAdmin_RequiresStrongPassword(t *testing.T) {
	db := testutil.NewTestDB(t)

	cfg := devConfig()
	cfg.DevAdminPassword = ""
	assert.Error(t, ensureDevAdmin(context.Background(), cfg, db))

	cfg.DevAdminPassword = "short"
	assert.Error(t, ensureDevAdmin(context.Background(), cfg, db))
}
