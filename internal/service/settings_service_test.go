package service

import (
	"context"
	"testing"

	"gochurch/internal/models"
	"gochurch/internal/repository"
	"gochurch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_UserSettingsGetOrCreate(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	first, err := svc.GetUserSettings(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "public", first.ProfileVisibility)
	assert.True(t, first.EmailNotifications)

	again, err := svc.GetUserSettings(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	dark := "dark"
	off := false
	updated, err := svc.UpdateUserSettings(ctx, 5, UserSettingsUpdate{Theme: &dark, EmailNotifications: &off})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.False(t, updated.EmailNotifications)
	assert.True(t, updated.PushNotifications)
	assert.Equal(t, "en", updated.Language)

	neon := "neon"
	_, err = svc.UpdateUserSettings(ctx, 5, UserSettingsUpdate{Theme: &neon})
	assertAppError(t, err, models.CodeValidation)
}

func TestSettingsService_SystemSettings(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	created, err := svc.CreateSystemSetting(ctx, CreateSystemSettingInput{Key: "welcome", Value: "Hello", IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, "general", created.Category)

	_, err = svc.CreateSystemSetting(ctx, CreateSystemSettingInput{Key: "welcome", Value: "Again"})
	assertAppError(t, err, models.CodeConflict)

	value := "Welcome home"
	updated, err := svc.UpdateSystemSetting(ctx, "welcome", SystemSettingUpdate{Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "Welcome home", updated.Value)
	assert.True(t, updated.IsPublic)

	public, err := svc.PublicSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"welcome": "Welcome home"}, public)

	_, err = svc.UpdateSystemSetting(ctx, "missing", SystemSettingUpdate{Value: &value})
	assertAppError(t, err, models.CodeNotFound)
}

func TestSettingsService_NotificationDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	_, err := svc.CreateNotificationSetting(ctx, 3, CreateNotificationSettingInput{NotificationType: "email", Category: "comment", Frequency: "daily"})
	require.NoError(t, err)
	_, err = svc.CreateNotificationSetting(ctx, 3, CreateNotificationSettingInput{NotificationType: "email", Category: "comment"})
	assertAppError(t, err, models.CodeConflict)
	_, err = svc.CreateNotificationSetting(ctx, 3, CreateNotificationSettingInput{NotificationType: "sms", Category: "comment"})
	assertAppError(t, err, models.CodeValidation)

	created, err := svc.CreateDefaultNotificationSettings(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, created, 5)

	all, err := svc.ListNotificationSettings(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	on := true
	updated, err := svc.UpdateNotificationSetting(ctx, 3, "email", "comment", NotificationSettingUpdate{IsEnabled: &on})
	require.NoError(t, err)
	assert.True(t, updated.IsEnabled)
	assert.Equal(t, "daily", updated.Frequency)

	_, err = svc.UpdateNotificationSetting(ctx, 4, "email", "comment", NotificationSettingUpdate{IsEnabled: &on})
	assertAppError(t, err, models.CodeNotFound)
}
