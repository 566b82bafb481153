package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/task-follow-api/internal/config"
	"github.com/yukikurage/task-follow-api/internal/models"
)

func memoryConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     ":memory:",
		LogLevel: "silent",
	}
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(memoryConfig(t))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { Close(db) })

	require.NoError(t, Migrate(db))
	// Re-running must be a no-op
	require.NoError(t, Migrate(db))

	for _, table := range []string{"user", "task", "follow"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex("user", "idx_user_uuid"))
	assert.True(t, db.Migrator().HasIndex("follow", "idx_follow_task_id"))

	user := models.User{UUID: "u-1", Name: "alice"}
	require.NoError(t, db.Create(&user).Error)

	var count int64
	require.NoError(t, db.Table("user").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	db, err := Open(memoryConfig(t))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { Close(db) })
	require.NoError(t, Migrate(db))

	err = db.Create(&models.Task{Content: "orphan", UserID: 42}).Error
	assert.Error(t, err)
}

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
}

func TestDialector_KnownDrivers(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverMySQL, config.DriverPostgres} {
		d, err := Dialector(config.DatabaseConfig{Driver: driver, Path: "x.db", Host: "h", Port: "1", Name: "n"})
		require.NoError(t, err, driver)
		assert.NotNil(t, d)
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Error, LogLevel("error"))
	assert.Equal(t, logger.Info, LogLevel("info"))
	assert.Equal(t, logger.Warn, LogLevel("anything"))
}
