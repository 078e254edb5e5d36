package database

import "gochurch/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM
// models, parents before children.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Church{},
		&models.User{},
		&models.Profile{},
		&models.Board{},
		&models.Post{},
		&models.PostTag{},
		&models.Comment{},
		&models.ActionLog{},
		&models.IdentityVerification{},
		&models.UserSettings{},
		&models.SystemSetting{},
		&models.NotificationSetting{},
		&models.TaskResult{},
	}
}
