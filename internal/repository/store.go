package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStore is a GORM implementation of Store
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) Store {
	return &GormStore{db: db}
}

// Transaction runs fn with repositories bound to one GORM transaction
func (s *GormStore) Transaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// NewRepositories binds every repository to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:   NewUserRepository(db),
		Tasks:   NewTaskRepository(db),
		Follows: NewFollowRepository(db),
	}
}
