package repository

import (
	"context"
	"errors"
	"fmt"

	"gochurch/internal/cache"
	"gochurch/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository stores per-user settings, operator-managed system
// settings and per-channel notification preferences.
type SettingsRepository interface {
	GetUserSettings(ctx context.Context, userID uint) (*models.UserSettings, error)
	CreateUserSettings(ctx context.Context, s *models.UserSettings) error
	SaveUserSettings(ctx context.Context, s *models.UserSettings) error

	GetSystemSetting(ctx context.Context, key string) (*models.SystemSetting, error)
	ListSystemSettings(ctx context.Context, category string, publicOnly bool) ([]models.SystemSetting, error)
	PublicSystemValues(ctx context.Context) (map[string]string, error)
	CreateSystemSetting(ctx context.Context, s *models.SystemSetting) error
	SaveSystemSetting(ctx context.Context, s *models.SystemSetting) error
	DeleteSystemSetting(ctx context.Context, key string) error

	ListNotificationSettings(ctx context.Context, userID uint) ([]models.NotificationSetting, error)
	GetNotificationSetting(ctx context.Context, userID uint, notificationType, category string) (*models.NotificationSetting, error)
	CreateNotificationSetting(ctx context.Context, s *models.NotificationSetting) error
	SaveNotificationSetting(ctx context.Context, s *models.NotificationSetting) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetUserSettings returns nil, nil when the user has no settings row yet.
func (r *settingsRepository) GetUserSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	var s models.UserSettings
	err := conn(ctx, r.db).Where("user_id = ?", userID).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user settings: %w", err)
	}
	return &s, nil
}

func (r *settingsRepository) CreateUserSettings(ctx context.Context, s *models.UserSettings) error {
	if err := conn(ctx, r.db).Create(s).Error; err != nil {
		return fmt.Errorf("create user settings: %w", err)
	}
	return nil
}

func (r *settingsRepository) SaveUserSettings(ctx context.Context, s *models.UserSettings) error {
	if err := conn(ctx, r.db).Save(s).Error; err != nil {
		return fmt.Errorf("save user settings: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetSystemSetting(ctx context.Context, key string) (*models.SystemSetting, error) {
	var s models.SystemSetting
	err := conn(ctx, r.db).Where("key = ?", key).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Setting", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get system setting %q: %w", key, err)
	}
	return &s, nil
}

func (r *settingsRepository) ListSystemSettings(ctx context.Context, category string, publicOnly bool) ([]models.SystemSetting, error) {
	q := conn(ctx, r.db).Order("category, key")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if publicOnly {
		q = q.Where("is_public = ?", true)
	}
	out := []models.SystemSetting{}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list system settings: %w", err)
	}
	return out, nil
}

// PublicSystemValues returns the public settings as a key to value map.
func (r *settingsRepository) PublicSystemValues(ctx context.Context) (map[string]string, error) {
	values := map[string]string{}
	err := cache.Aside(ctx, cache.PublicSettingsKey, &values, cache.PublicSettingsTTL, func() error {
		settings, err := r.ListSystemSettings(ctx, "", true)
		if err != nil {
			return err
		}
		for _, s := range settings {
			values[s.Key] = s.Value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *settingsRepository) CreateSystemSetting(ctx context.Context, s *models.SystemSetting) error {
	if err := conn(ctx, r.db).Create(s).Error; err != nil {
		return fmt.Errorf("create system setting: %w", err)
	}
	cache.Invalidate(ctx, cache.PublicSettingsKey)
	return nil
}

func (r *settingsRepository) SaveSystemSetting(ctx context.Context, s *models.SystemSetting) error {
	if err := conn(ctx, r.db).Save(s).Error; err != nil {
		return fmt.Errorf("save system setting: %w", err)
	}
	cache.Invalidate(ctx, cache.PublicSettingsKey)
	return nil
}

func (r *settingsRepository) DeleteSystemSetting(ctx context.Context, key string) error {
	res := conn(ctx, r.db).Where("key = ?", key).Delete(&models.SystemSetting{})
	if res.Error != nil {
		return fmt.Errorf("delete system setting %q: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Setting", nil)
	}
	cache.Invalidate(ctx, cache.PublicSettingsKey)
	return nil
}

func (r *settingsRepository) ListNotificationSettings(ctx context.Context, userID uint) ([]models.NotificationSetting, error) {
	out := []models.NotificationSetting{}
	err := conn(ctx, r.db).Where("user_id = ?", userID).
		Order("notification_type, category").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list notification settings: %w", err)
	}
	return out, nil
}

// GetNotificationSetting returns nil, nil when no row matches.
func (r *settingsRepository) GetNotificationSetting(ctx context.Context, userID uint, notificationType, category string) (*models.NotificationSetting, error) {
	var s models.NotificationSetting
	err := conn(ctx, r.db).
		Where("user_id = ? AND notification_type = ? AND category = ?", userID, notificationType, category).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notification setting: %w", err)
	}
	return &s, nil
}

func (r *settingsRepository) CreateNotificationSetting(ctx context.Context, s *models.NotificationSetting) error {
	if err := conn(ctx, r.db).Create(s).Error; err != nil {
		return fmt.Errorf("create notification setting: %w", err)
	}
	return nil
}

func (r *settingsRepository) SaveNotificationSetting(ctx context.Context, s *models.NotificationSetting) error {
	if err := conn(ctx, r.db).Save(s).Error; err != nil {
		return fmt.Errorf("save notification setting: %w", err)
	}
	return nil
}
