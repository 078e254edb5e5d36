package database

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"gochurch/internal/config"
	"gochurch/internal/middleware"

	"gorm.io/gorm"
)

// DB_SCHEMA_MODE values. Hybrid applies the SQL migrations and, outside
// production, tops them up with AutoMigrate.
const (
	SchemaModeHybrid = "hybrid"
	SchemaModeSQL    = "sql"
	SchemaModeAuto   = "auto"
)

// SchemaStatus is what `migrate status` prints.
type SchemaStatus struct {
	Mode               string
	Environment        string
	WillRunSQL         bool
	WillRunAutoMigrate bool
	AppliedVersions    []int
	PendingMigrations  []Migration
}

// schemaPlan is the resolved schema policy for one config.
type schemaPlan struct {
	mode string
	sql  bool
	auto bool
}

var protectedEnvs = []string{"production", "prod", "staging", "stage"}

func planSchema(cfg *config.Config) (schemaPlan, error) {
	plan := schemaPlan{mode: cfg.DBSchemaMode}
	if plan.mode == "" {
		plan.mode = SchemaModeHybrid
	}
	protected := slices.Contains(protectedEnvs, cfg.Env)

	// Migrations are postgres DDL, so sqlite only ever auto-migrates.
	if cfg.DBDriver == DriverSQLite {
		if plan.mode == SchemaModeSQL {
			return plan, fmt.Errorf("DB_SCHEMA_MODE=sql needs DB_DRIVER=postgres")
		}
		plan.auto = true
		return plan, nil
	}

	switch plan.mode {
	case SchemaModeSQL:
		plan.sql = true
	case SchemaModeHybrid:
		plan.sql, plan.auto = true, !protected
	case SchemaModeAuto:
		if protected && !cfg.DBAutoMigrateAllowDestructive {
			return plan, fmt.Errorf("DB_SCHEMA_MODE=auto in %q requires DB_AUTOMIGRATE_ALLOW_DESTRUCTIVE=true", cfg.Env)
		}
		plan.auto = true
	default:
		return plan, fmt.Errorf("unknown DB_SCHEMA_MODE %q", plan.mode)
	}
	return plan, nil
}

// ApplySchema brings the schema up to date under the configured policy.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	plan, err := planSchema(cfg)
	if err != nil {
		return err
	}
	if plan.sql {
		if err := RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("run sql migrations: %w", err)
		}
	}
	if !plan.auto {
		return nil
	}

	middleware.Logger.InfoContext(ctx, "auto-migrating models",
		slog.String("mode", plan.mode),
		slog.String("env", cfg.Env),
		slog.Bool("destructive_allowed", cfg.DBAutoMigrateAllowDestructive),
	)
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// GetSchemaStatus resolves the policy and, when SQL migrations are in play,
// lists applied and pending versions. It changes nothing.
func GetSchemaStatus(ctx context.Context, db *gorm.DB, cfg *config.Config) (*SchemaStatus, error) {
	plan, err := planSchema(cfg)
	if err != nil {
		return nil, err
	}
	status := &SchemaStatus{
		Mode:               plan.mode,
		Environment:        cfg.Env,
		WillRunSQL:         plan.sql,
		WillRunAutoMigrate: plan.auto,
	}
	if !plan.sql {
		return status, nil
	}

	applied, err := NewMigrationStore(db).GetAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	status.AppliedVersions = applied
	for _, m := range GetMigrations() {
		if !slices.Contains(applied, m.Version) {
			status.PendingMigrations = append(status.PendingMigrations, m)
		}
	}
	return status, nil
}
