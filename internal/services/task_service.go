package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/task-follow-api/internal/models"
	"github.com/yukikurage/task-follow-api/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task business logic. Mutations are not ownership checked:
// anyone who can name a task id may update or delete it.
type TaskService struct {
	store repository.Store
}

// NewTaskService creates a new TaskService
func NewTaskService(store repository.Store) *TaskService {
	return &TaskService{
		store: store,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerUUID string
	Content   string
	Completed bool
}

// UpdateTaskInput represents input for updating a task. Content is always
// overwritten, Completed only when set.
type UpdateTaskInput struct {
	Content   string
	Completed *bool
}

// CreateTask creates a task bound to its owner
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if err := validateText(input.Content, MaxContentLength, ErrContentRequired, ErrContentTooLong); err != nil {
		return nil, err
	}

	var task *models.Task
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		owner, err := findUser(repos, input.OwnerUUID, ErrUserNotFound)
		if err != nil {
			return err
		}

		task = &models.Task{
			Content:   input.Content,
			Completed: input.Completed,
			UserID:    owner.ID,
		}
		return repos.Tasks.Create(task)
	})
	if err != nil {
		return nil, storageError("create task", err)
	}

	return task, nil
}

// UpdateTask updates an existing task
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if err := validateText(input.Content, MaxContentLength, ErrContentRequired, ErrContentTooLong); err != nil {
		return nil, err
	}

	var task *models.Task
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		var err error
		task, err = findTask(repos, taskID)
		if err != nil {
			return err
		}

		task.Content = input.Content
		if input.Completed != nil {
			task.Completed = *input.Completed
		}

		return repos.Tasks.Update(task)
	})
	if err != nil {
		return nil, storageError("update task", err)
	}

	return task, nil
}

// DeleteTask deletes a task. Its follows survive with the task reference cleared.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		if _, err := findTask(repos, taskID); err != nil {
			return err
		}
		return repos.Tasks.Delete(taskID)
	})
	if err != nil {
		return storageError("delete task", err)
	}

	return nil
}

// ListTasks returns the owner's tasks in the given completion state, oldest first
func (s *TaskService) ListTasks(ctx context.Context, ownerUUID string, completed bool) ([]models.Task, error) {
	var tasks []models.Task
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		owner, err := findUser(repos, ownerUUID, ErrUserNotFound)
		if err != nil {
			return err
		}

		tasks, err = repos.Tasks.ListByOwner(owner.ID, completed)
		return err
	})
	if err != nil {
		return nil, storageError("list tasks", err)
	}

	return tasks, nil
}

func findTask(repos repository.Repositories, taskID uint64) (*models.Task, error) {
	task, err := repos.Tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
