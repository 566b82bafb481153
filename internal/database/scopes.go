package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a task query to the tasks of one user.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// WithCompleted filters tasks on their completion state.
func WithCompleted(completed bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("completed = ?", completed)
	}
}

// InsertionOrder sorts rows by their sequential primary key.
func InsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
