package repository

import (
	"github.com/yukikurage/task-follow-api/internal/database"
	"github.com/yukikurage/task-follow-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByUUID finds a user by its opaque identifier with optional preloading
func (r *GormUserRepository) FindByUUID(uuid string, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db

	for _, p := range preload {
		query = query.Preload(p, database.InsertionOrder)
	}

	if err := query.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
