package models

import "time"

// UserSettings stores per-user privacy, notification and display preferences.
type UserSettings struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	ProfileVisibility      string    `gorm:"size:20;not null" json:"profile_visibility"`
	EmailVisibility        bool      `gorm:"not null" json:"email_visibility"`
	PhoneVisibility        bool      `gorm:"not null" json:"phone_visibility"`
	EmailNotifications     bool      `gorm:"not null" json:"email_notifications"`
	PushNotifications      bool      `gorm:"not null" json:"push_notifications"`
	CommunityNotifications bool      `gorm:"not null" json:"community_notifications"`
	CommentNotifications   bool      `gorm:"not null" json:"comment_notifications"`
	MentionNotifications   bool      `gorm:"not null" json:"mention_notifications"`
	Theme                  string    `gorm:"size:20;not null" json:"theme"`
	Language               string    `gorm:"size:10;not null" json:"language"`
	Timezone               string    `gorm:"size:50;not null" json:"timezone"`
	NSFWContent            bool      `gorm:"column:nsfw_content;not null" json:"nsfw_content"`
	AutoPlayMedia          bool      `gorm:"not null" json:"auto_play_media"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// DefaultUserSettings returns the settings a user gets before changing anything.
func DefaultUserSettings(userID uint) *UserSettings {
	return &UserSettings{
		UserID:                 userID,
		ProfileVisibility:      "public",
		EmailNotifications:     true,
		PushNotifications:      true,
		CommunityNotifications: true,
		CommentNotifications:   true,
		MentionNotifications:   true,
		Theme:                  "light",
		Language:               "en",
		Timezone:               "UTC",
		AutoPlayMedia:          true,
	}
}

// SystemSetting is an operator-managed key/value entry.
type SystemSetting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value       string    `gorm:"type:text;not null" json:"value"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null;default:'general';index" json:"category"`
	IsPublic    bool      `gorm:"not null" json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NotificationSetting enables or disables one notification channel for a
// category of events.
type NotificationSetting struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:uq_notification_settings_key,priority:1" json:"user_id"`
	NotificationType string    `gorm:"size:20;not null;uniqueIndex:uq_notification_settings_key,priority:2" json:"notification_type"`
	Category         string    `gorm:"size:50;not null;uniqueIndex:uq_notification_settings_key,priority:3" json:"category"`
	IsEnabled        bool      `gorm:"not null" json:"is_enabled"`
	Frequency        string    `gorm:"size:20;not null" json:"frequency"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Notification channels and categories used for default settings.
var (
	NotificationTypes      = []string{"email", "push"}
	NotificationCategories = []string{"community", "comment", "mention"}
)
