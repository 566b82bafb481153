package repository

import (
	"github.com/yukikurage/task-follow-api/internal/database"
	"github.com/yukikurage/task-follow-api/internal/models"
	"gorm.io/gorm"
)

// GormFollowRepository is a GORM implementation of FollowRepository
type GormFollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &GormFollowRepository{db: db}
}

// Create creates a new follow
func (r *GormFollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// FindByID finds a follow by ID
func (r *GormFollowRepository) FindByID(id uint64) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.First(&follow, id).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

// ListByFollower lists the follows made by a user
func (r *GormFollowRepository) ListByFollower(userID uint64) ([]models.Follow, error) {
	follows := []models.Follow{}
	if err := r.db.Where("user_id = ?", userID).Scopes(database.InsertionOrder).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

// Delete deletes a follow
func (r *GormFollowRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Follow{}, id).Error
}

// DeleteForUser deletes the follows made by a user together with every follow,
// by anyone, on a task the user owns.
func (r *GormFollowRepository) DeleteForUser(userID uint64) (int64, error) {
	ownedTasks := r.db.Model(&models.Task{}).Select("id").Where("user_id = ?", userID)

	result := r.db.Where("user_id = ? OR task_id IN (?)", userID, ownedTasks).Delete(&models.Follow{})
	return result.RowsAffected, result.Error
}
