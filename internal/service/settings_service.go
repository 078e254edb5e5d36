package service

import (
	"context"
	"slices"
	"strings"

	"gochurch/internal/database"
	"gochurch/internal/models"
	"gochurch/internal/repository"

	"github.com/jinzhu/copier"
)

var (
	profileVisibilities = []string{"public", "friends", "private"}
	themes              = []string{"light", "dark", "auto"}
	frequencies         = []string{"immediate", "daily", "weekly", "never"}
)

type SettingsService struct {
	settings repository.SettingsRepository
}

// UserSettingsUpdate carries a partial update; nil fields are left unchanged.
type UserSettingsUpdate struct {
	ProfileVisibility      *string
	EmailVisibility        *bool
	PhoneVisibility        *bool
	EmailNotifications     *bool
	PushNotifications      *bool
	CommunityNotifications *bool
	CommentNotifications   *bool
	MentionNotifications   *bool
	Theme                  *string
	Language               *string
	Timezone               *string
	NSFWContent            *bool
	AutoPlayMedia          *bool
}

type CreateSystemSettingInput struct {
	Key         string
	Value       string
	Description string
	Category    string
	IsPublic    bool
}

// SystemSettingUpdate carries a partial update; nil fields are left unchanged.
type SystemSettingUpdate struct {
	Value       *string
	Description *string
	Category    *string
	IsPublic    *bool
}

type CreateNotificationSettingInput struct {
	NotificationType string
	Category         string
	IsEnabled        bool
	Frequency        string
}

// NotificationSettingUpdate carries a partial update; nil fields are left unchanged.
type NotificationSettingUpdate struct {
	IsEnabled *bool
	Frequency *string
}

func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// GetUserSettings returns the user's settings, creating the defaults on
// first access.
func (s *SettingsService) GetUserSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	existing, err := s.settings.GetUserSettings(ctx, userID)
	if err != nil || existing != nil {
		return existing, err
	}

	created := models.DefaultUserSettings(userID)
	if err := s.settings.CreateUserSettings(ctx, created); err != nil {
		// Another request created the row first.
		if database.IsUniqueViolation(err) {
			return s.settings.GetUserSettings(ctx, userID)
		}
		return nil, err
	}
	return created, nil
}

func (s *SettingsService) UpdateUserSettings(ctx context.Context, userID uint, in UserSettingsUpdate) (*models.UserSettings, error) {
	if in.ProfileVisibility != nil && !slices.Contains(profileVisibilities, *in.ProfileVisibility) {
		return nil, models.NewValidationError("Invalid profile visibility")
	}
	if in.Theme != nil && !slices.Contains(themes, *in.Theme) {
		return nil, models.NewValidationError("Invalid theme")
	}

	current, err := s.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(current, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.settings.SaveUserSettings(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *SettingsService) ListSystemSettings(ctx context.Context, category string, publicOnly bool) ([]models.SystemSetting, error) {
	return s.settings.ListSystemSettings(ctx, category, publicOnly)
}

// PublicSettings returns public system settings as a key to value map.
func (s *SettingsService) PublicSettings(ctx context.Context) (map[string]string, error) {
	return s.settings.PublicSystemValues(ctx)
}

func (s *SettingsService) CreateSystemSetting(ctx context.Context, in CreateSystemSettingInput) (*models.SystemSetting, error) {
	key := strings.TrimSpace(in.Key)
	if key == "" {
		return nil, models.NewValidationError("Key is required")
	}
	setting := &models.SystemSetting{
		Key:         key,
		Value:       in.Value,
		Description: in.Description,
		Category:    in.Category,
		IsPublic:    in.IsPublic,
	}
	if setting.Category == "" {
		setting.Category = "general"
	}
	if err := s.settings.CreateSystemSetting(ctx, setting); err != nil {
		return nil, conflictOr(err, "Setting key already exists")
	}
	return setting, nil
}

func (s *SettingsService) UpdateSystemSetting(ctx context.Context, key string, in SystemSettingUpdate) (*models.SystemSetting, error) {
	setting, err := s.settings.GetSystemSetting(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(setting, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.settings.SaveSystemSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingsService) DeleteSystemSetting(ctx context.Context, key string) error {
	return s.settings.DeleteSystemSetting(ctx, key)
}

func (s *SettingsService) ListNotificationSettings(ctx context.Context, userID uint) ([]models.NotificationSetting, error) {
	return s.settings.ListNotificationSettings(ctx, userID)
}

func (s *SettingsService) CreateNotificationSetting(ctx context.Context, userID uint, in CreateNotificationSettingInput) (*models.NotificationSetting, error) {
	if err := validateNotificationKey(in.NotificationType, in.Category); err != nil {
		return nil, err
	}
	if in.Frequency == "" {
		in.Frequency = "immediate"
	}
	if !slices.Contains(frequencies, in.Frequency) {
		return nil, models.NewValidationError("Invalid frequency")
	}

	setting := &models.NotificationSetting{
		UserID:           userID,
		NotificationType: in.NotificationType,
		Category:         in.Category,
		IsEnabled:        in.IsEnabled,
		Frequency:        in.Frequency,
	}
	if err := s.settings.CreateNotificationSetting(ctx, setting); err != nil {
		return nil, conflictOr(err, "Notification setting already exists")
	}
	return setting, nil
}

func (s *SettingsService) UpdateNotificationSetting(ctx context.Context, userID uint, notificationType, category string, in NotificationSettingUpdate) (*models.NotificationSetting, error) {
	if in.Frequency != nil && !slices.Contains(frequencies, *in.Frequency) {
		return nil, models.NewValidationError("Invalid frequency")
	}
	setting, err := s.settings.GetNotificationSetting(ctx, userID, notificationType, category)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, models.NewNotFoundError("Notification setting", nil)
	}
	if err := copier.CopyWithOption(setting, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.settings.SaveNotificationSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// CreateDefaultNotificationSettings enables every channel for every
// category, skipping rows the user already has. It returns the rows it
// created.
func (s *SettingsService) CreateDefaultNotificationSettings(ctx context.Context, userID uint) ([]models.NotificationSetting, error) {
	created := []models.NotificationSetting{}
	for _, typ := range models.NotificationTypes {
		for _, cat := range models.NotificationCategories {
			existing, err := s.settings.GetNotificationSetting(ctx, userID, typ, cat)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				continue
			}
			setting := models.NotificationSetting{
				UserID:           userID,
				NotificationType: typ,
				Category:         cat,
				IsEnabled:        true,
				Frequency:        "immediate",
			}
			if err := s.settings.CreateNotificationSetting(ctx, &setting); err != nil {
				return nil, err
			}
			created = append(created, setting)
		}
	}
	return created, nil
}

func validateNotificationKey(notificationType, category string) error {
	if !slices.Contains(models.NotificationTypes, notificationType) {
		return models.NewValidationError("Invalid notification type")
	}
	if !slices.Contains(models.NotificationCategories, category) {
		return models.NewValidationError("Invalid notification category")
	}
	return nil
}
