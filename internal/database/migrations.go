package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/task-follow-api/internal/models"
)

// Migrate creates the user, task and follow tables and their lookup indexes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Follow{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}

// AddIndexes adds the indexes used by uuid resolution and the per-user listings.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table  string
		name   string
		column string
	}{
		// Every request resolves a user by uuid
		{"user", "idx_user_uuid", "uuid"},

		{"task", "idx_task_user_id", "user_id"},
		{"follow", "idx_follow_user_id", "user_id"},
		{"follow", "idx_follow_task_id", "task_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		err := db.Exec("CREATE INDEX ? ON ? (?)",
			clause.Column{Name: idx.name},
			clause.Table{Name: idx.table},
			clause.Column{Name: idx.column},
		).Error
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
