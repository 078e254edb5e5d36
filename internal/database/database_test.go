package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gochurch/internal/config"
	"gochurch/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}
	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestConnect_SQLiteAutoMigrates(t *testing.T) {
	cfg := &config.Config{
		Env:            "test",
		DBDriver:       DriverSQLite,
		DBSQLitePath:   "file:" + t.Name() + "?mode=memory&cache=shared",
		DBSchemaMode:   SchemaModeHybrid,
		DBMaxOpenConns: 1,
	}

	db, err := Connect(cfg)
	require.NoError(t, err)

	for _, model := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(model), fmt.Sprintf("%T", model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.ActionLog{}, "uq_action_logs_key"))
}

func TestConnectWithOptions_SkipsSchema(t *testing.T) {
	cfg := &config.Config{
		Env:            "test",
		DBDriver:       DriverSQLite,
		DBSQLitePath:   "file:" + t.Name() + "?mode=memory&cache=shared",
		DBMaxOpenConns: 1,
	}

	db, err := ConnectWithOptions(cfg, ConnectOptions{})
	require.NoError(t, err)
	assert.False(t, db.Migrator().HasTable(&models.ActionLog{}))
}

func TestPlanSchema(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		runSQL  bool
		runAuto bool
		wantErr bool
	}{
		{"hybrid in development", config.Config{Env: "development"}, true, true, false},
		{"hybrid in production", config.Config{Env: "production", DBSchemaMode: SchemaModeHybrid}, true, false, false},
		{"sql only", config.Config{Env: "development", DBSchemaMode: SchemaModeSQL}, true, false, false},
		{"auto refused in production", config.Config{Env: "production", DBSchemaMode: SchemaModeAuto}, false, false, true},
		{"auto allowed when destructive opt-in", config.Config{Env: "production", DBSchemaMode: SchemaModeAuto, DBAutoMigrateAllowDestructive: true}, false, true, false},
		{"sqlite forces auto", config.Config{Env: "test", DBDriver: DriverSQLite}, false, true, false},
		{"sqlite rejects sql mode", config.Config{Env: "test", DBDriver: DriverSQLite, DBSchemaMode: SchemaModeSQL}, false, false, true},
		{"unknown mode", config.Config{DBSchemaMode: "yolo"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planSchema(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.runSQL, plan.sql)
			assert.Equal(t, tt.runAuto, plan.auto)
		})
	}
}

func TestGetSchemaStatus_SQLiteSkipsMigrationLog(t *testing.T) {
	cfg := &config.Config{Env: "test", DBDriver: DriverSQLite}
	status, err := GetSchemaStatus(context.Background(), nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, SchemaModeHybrid, status.Mode)
	assert.False(t, status.WillRunSQL)
	assert.True(t, status.WillRunAutoMigrate)
	assert.Empty(t, status.PendingMigrations)
}

func TestEmbeddedMigrationsRegistered(t *testing.T) {
	all := GetMigrations()
	require.NotEmpty(t, all)
	assert.Equal(t, 1, all[0].Version)
	assert.Equal(t, "init_schema", all[0].Name)
	assert.Contains(t, all[0].UpScript, "uq_action_logs_key")
	assert.Contains(t, all[0].DownScript, "DROP TABLE IF EXISTS action_logs")
	assert.Equal(t, "000001_init_schema", GetMigrationByVersion(1).String())
	assert.Nil(t, GetMigrationByVersion(999))
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1}, {Version: 2}}
	assert.NoError(t, validateAppliedVersions(nil, registered))
	assert.NoError(t, validateAppliedVersions([]int{1, 2}, registered))
	assert.ErrorContains(t, validateAppliedVersions([]int{1, 7}, registered), "000007")
}

func TestMigrationStore_SQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	ctx := context.Background()
	store := NewMigrationStore(db)

	applied, err := store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)

	require.NoError(t, db.AutoMigrate(&MigrationLog{}))
	require.NoError(t, store.ApplyMigration(ctx, 1, "create_widgets", "CREATE TABLE widgets (id INTEGER PRIMARY KEY)"))
	assert.Error(t, store.ApplyMigration(ctx, 2, "broken", "CREATE TABLE"))

	applied, err = store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, applied)

	require.NoError(t, store.RemoveMigration(ctx, 1))
	applied, err = store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
}
