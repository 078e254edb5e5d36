package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gochurch/internal/middleware"
	"gochurch/internal/models"

	"gorm.io/gorm"
)

// clearOrder lists the community tables children first. System settings
// and task results are operator state and survive a clear.
var clearOrder = []struct {
	table string
	model any
}{
	{"action_logs", &models.ActionLog{}},
	{"post_tags", &models.PostTag{}},
	{"comments", &models.Comment{}},
	{"posts", &models.Post{}},
	{"boards", &models.Board{}},
	{"identity_verifications", &models.IdentityVerification{}},
	{"notification_settings", &models.NotificationSetting{}},
	{"user_settings", &models.UserSettings{}},
	{"profiles", &models.Profile{}},
	{"users", &models.User{}},
	{"churches", &models.Church{}},
}

// ClearAll deletes every community row in dependency order inside one
// transaction and returns the number of rows removed per table.
func ClearAll(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	deleted := make(map[string]int64, len(clearOrder))
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, item := range clearOrder {
			res := all.Delete(item.model)
			if res.Error != nil {
				return fmt.Errorf("clear %s: %w", item.table, res.Error)
			}
			deleted[item.table] = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "community data cleared",
		slog.Int64("posts", deleted["posts"]),
		slog.Int64("users", deleted["users"]),
	)
	return deleted, nil
}
