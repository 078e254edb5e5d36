// Package bootstrap wires the database, cache and built-in data shared by the
// server and the command-line tools.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gochurch/internal/cache"
	"gochurch/internal/config"
	"gochurch/internal/database"
	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/seed"
	"gochurch/internal/validation"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally seeds the built-in
// boards. The Redis client is nil when Redis is unreachable.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ensureDevAdmin(ctx, cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
	}

	if opts.SeedBuiltIns {
		boards, err := seed.Boards(ctx, db)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in boards: %w", err)
		}
		middleware.Logger.Info("built-in boards ensured", slog.Int("boards", len(boards)))
	}

	return db, r, nil
}

// ensureDevAdmin creates or promotes the development admin account named by
// DEV_ADMIN_EMAIL. It only runs in development with DEV_BOOTSTRAP_ADMIN set.
func ensureDevAdmin(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapAdmin {
		return nil
	}

	email := strings.TrimSpace(strings.ToLower(cfg.DevAdminEmail))
	if email == "" {
		return errors.New("DEV_ADMIN_EMAIL must be set when DEV_BOOTSTRAP_ADMIN is enabled")
	}
	if cfg.DevAdminPassword == "" {
		return errors.New("DEV_ADMIN_PASSWORD must be set when DEV_BOOTSTRAP_ADMIN is enabled")
	}
	if err := validation.ValidatePassword(cfg.DevAdminPassword); err != nil {
		return fmt.Errorf("DEV_ADMIN_PASSWORD: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DevAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Where("email = ?", email).Take(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Email:        email,
				Username:     "admin",
				PasswordHash: string(hashedPassword),
				IsAdmin:      true,
			}
			return tx.Create(&admin).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&admin).Updates(map[string]any{
				"is_admin":      true,
				"is_blocked":    false,
				"password_hash": string(hashedPassword),
			}).Error
		}
	})
	if err != nil {
		return err
	}

	middleware.Logger.Info("development admin ensured", slog.String("email", email))
	return nil
}
