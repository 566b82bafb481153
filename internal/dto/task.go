package dto

import (
	"github.com/yukikurage/task-follow-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64 `json:"id"`
	Completed bool   `json:"completed"`
	Content   string `json:"content"`
}

// FollowDTO represents a follow in API responses. TaskID is null once the
// followed task has been deleted.
type FollowDTO struct {
	ID     uint64  `json:"id"`
	UserID uint64  `json:"user_id"`
	TaskID *uint64 `json:"task_id"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Completed: task.Completed,
		Content:   task.Content,
	}
}

// ToTaskDTOs converts tasks, always returning a non-nil slice
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToFollowDTO converts a Follow model to FollowDTO
func ToFollowDTO(follow models.Follow) FollowDTO {
	return FollowDTO{
		ID:     follow.ID,
		UserID: follow.UserID,
		TaskID: follow.TaskID,
	}
}

// ToFollowDTOs converts follows, always returning a non-nil slice
func ToFollowDTOs(follows []models.Follow) []FollowDTO {
	items := make([]FollowDTO, len(follows))
	for i, follow := range follows {
		items[i] = ToFollowDTO(follow)
	}
	return items
}
