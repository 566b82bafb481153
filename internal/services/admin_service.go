package services

import (
	"context"

	"github.com/yukikurage/task-follow-api/internal/repository"
)

// AdminService holds the operations reserved for admin users.
type AdminService struct {
	store repository.Store
}

// NewAdminService creates a new AdminService.
func NewAdminService(store repository.Store) *AdminService {
	return &AdminService{
		store: store,
	}
}

// PurgeResult reports how many rows a purge removed.
type PurgeResult struct {
	TasksDeleted   int64
	FollowsDeleted int64
}

// PurgeUserData deletes every task owned by the target, every follow the target
// made and every follow other users made on the target's tasks. The target user
// record itself is kept. All deletions commit together or not at all.
func (s *AdminService) PurgeUserData(ctx context.Context, requestingUUID, targetUUID string) (*PurgeResult, error) {
	result := &PurgeResult{}
	err := s.store.Transaction(ctx, func(repos repository.Repositories) error {
		requester, err := findUser(repos, requestingUUID, ErrUserNotFound)
		if err != nil {
			return err
		}
		if !requester.Admin {
			return ErrAdminRequired
		}

		target, err := findUser(repos, targetUUID, ErrTargetNotFound)
		if err != nil {
			return err
		}

		// Follows go first so none is left pointing at a deleted task
		result.FollowsDeleted, err = repos.Follows.DeleteForUser(target.ID)
		if err != nil {
			return err
		}

		result.TasksDeleted, err = repos.Tasks.DeleteByOwner(target.ID)
		return err
	})
	if err != nil {
		return nil, storageError("purge user data", err)
	}

	return result, nil
}
