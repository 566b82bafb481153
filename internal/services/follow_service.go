package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/task-follow-api/internal/models"
	"github.com/yukikurage/task-follow-api/internal/repository"
	"gorm.io/gorm"
)

// FollowService links users to the tasks they follow.
type FollowService struct {
	store repository.Store
}

// NewFollowService creates a new FollowService.
func NewFollowService(store repository.Store) *FollowService {
	return &FollowService{
		store: store,
	}
}

// CreateFollow makes followerUUID follow taskID. Following the same task twice
// creates two follows.
func (s *FollowService) CreateFollow(ctx context.Context, followerUUID string, taskID uint64) (*models.Follow, error) {
	var follow *models.Follow
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		follower, err := findUser(repos, followerUUID, ErrUserNotFound)
		if err != nil {
			return err
		}

		task, err := findTask(repos, taskID)
		if err != nil {
			return err
		}

		follow = &models.Follow{
			UserID: follower.ID,
			TaskID: &task.ID,
		}
		return repos.Follows.Create(follow)
	})
	if err != nil {
		return nil, storageError("create follow", err)
	}

	return follow, nil
}

// DeleteFollow deletes a follow.
func (s *FollowService) DeleteFollow(ctx context.Context, followID uint64) error {
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Follows.FindByID(followID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFollowNotFound
			}
			return fmt.Errorf("failed to find follow: %w", err)
		}
		return repos.Follows.Delete(followID)
	})
	if err != nil {
		return storageError("delete follow", err)
	}

	return nil
}

// ListFollows returns the follows made by userUUID.
func (s *FollowService) ListFollows(ctx context.Context, userUUID string) ([]models.Follow, error) {
	var follows []models.Follow
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		user, err := findUser(repos, userUUID, ErrUserNotFound)
		if err != nil {
			return err
		}

		follows, err = repos.Follows.ListByFollower(user.ID)
		return err
	})
	if err != nil {
		return nil, storageError("list follows", err)
	}

	return follows, nil
}
