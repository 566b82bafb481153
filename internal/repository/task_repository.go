package repository

import (
	"github.com/yukikurage/task-follow-api/internal/database"
	"github.com/yukikurage/task-follow-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner lists a user's tasks with the given completion state
func (r *GormTaskRepository) ListByOwner(ownerID uint64, completed bool) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.
		Scopes(database.OwnedBy(ownerID), database.WithCompleted(completed), database.InsertionOrder).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task's content and completion state. The owner is never written.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Model(task).
		Select("content", "completed").
		Updates(models.Task{Content: task.Content, Completed: task.Completed}).Error
}

// Delete deletes a task. Follows of the task are kept with a NULL task_id.
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Follow{}).Where("task_id = ?", id).Update("task_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

// DeleteByOwner deletes every task owned by a user
func (r *GormTaskRepository) DeleteByOwner(ownerID uint64) (int64, error) {
	result := r.db.Where("user_id = ?", ownerID).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
