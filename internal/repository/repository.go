package repository

import (
	"context"

	"github.com/yukikurage/task-follow-api/internal/models"
)

// Store runs a unit of work against the database.
type Store interface {
	// Transaction runs fn inside a single transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories groups the repositories bound to one transaction
type Repositories struct {
	Users   UserRepository
	Tasks   TaskRepository
	Follows FollowRepository
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByUUID finds a user by its opaque identifier with optional preloading
	FindByUUID(uuid string, preload ...string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByOwner lists a user's tasks with the given completion state, oldest first
	ListByOwner(ownerID uint64, completed bool) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task and detaches the follows pointing at it
	Delete(id uint64) error

	// DeleteByOwner deletes every task owned by a user
	DeleteByOwner(ownerID uint64) (int64, error)
}

// FollowRepository defines the interface for follow data access
type FollowRepository interface {
	// Create creates a new follow
	Create(follow *models.Follow) error

	// FindByID finds a follow by ID
	FindByID(id uint64) (*models.Follow, error)

	// ListByFollower lists the follows made by a user, oldest first
	ListByFollower(userID uint64) ([]models.Follow, error)

	// Delete deletes a follow
	Delete(id uint64) error

	// DeleteForUser deletes the follows made by a user and the follows on that user's tasks
	DeleteForUser(userID uint64) (int64, error)
}
