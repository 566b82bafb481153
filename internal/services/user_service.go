package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/task-follow-api/internal/models"
	"github.com/yukikurage/task-follow-api/internal/repository"
	"github.com/yukikurage/task-follow-api/internal/utils"
	"gorm.io/gorm"
)

// UserService creates users and resolves them by their opaque identifier.
type UserService struct {
	store repository.Store
}

// NewUserService creates a new UserService.
func NewUserService(store repository.Store) *UserService {
	return &UserService{
		store: store,
	}
}

// CreateUserInput represents the information needed to create a user.
type CreateUserInput struct {
	Name  string
	Admin bool
}

// CreateUser validates the name, issues a fresh uuid and persists the user.
// The admin flag is fixed at creation.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := validateText(input.Name, MaxNameLength, ErrNameRequired, ErrNameTooLong); err != nil {
		return nil, err
	}

	opaqueID, err := utils.GenerateOpaqueID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	user := &models.User{
		UUID:  opaqueID,
		Name:  input.Name,
		Admin: input.Admin,
	}

	err = s.store.Transaction(ctx, func(repos repository.Repositories) error {
		return repos.Users.Create(user)
	})
	if err != nil {
		return nil, storageError("create user", err)
	}

	return user, nil
}

// GetUser returns a user together with its tasks and follows.
func (s *UserService) GetUser(ctx context.Context, uuid string) (*models.User, error) {
	var user *models.User
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = findUser(repos, uuid, ErrUserNotFound, "Tasks", "Follows")
		return err
	})
	if err != nil {
		return nil, storageError("get user", err)
	}

	return user, nil
}

// findUser resolves uuid, reporting a missing user as notFound.
func findUser(repos repository.Repositories, uuid string, notFound error, preload ...string) (*models.User, error) {
	user, err := repos.Users.FindByUUID(uuid, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
