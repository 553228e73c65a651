// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"

	"github.com/pkg/errors"
)

// ownershipGuard resolves a startup and checks that the requester owns it.
type ownershipGuard struct {
	startups repository.StartupRepository
	tasks    repository.TaskRepository
}

func newOwnershipGuard(startups repository.StartupRepository, tasks repository.TaskRepository) *ownershipGuard {
	return &ownershipGuard{startups: startups, tasks: tasks}
}

// authorize returns the startup when userID owns it.
func (g *ownershipGuard) authorize(ctx context.Context, userID, startupID int64) (*entity.Startup, error) {
	startup, err := g.startups.FindByID(ctx, startupID)
	if errors.Is(err, repository.ErrStartupNotFound) {
		return nil, domainerrors.ErrStartupNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find startup")
	}

	if startup.UserID != userID {
		return nil, domainerrors.ErrStartupForbidden
	}

	return startup, nil
}

// authorizeTask walks task -> startup -> owner.
func (g *ownershipGuard) authorizeTask(ctx context.Context, userID, taskID int64) (*entity.Task, error) {
	task, err := g.tasks.FindByID(ctx, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, domainerrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find task")
	}

	if _, err := g.authorize(ctx, userID, task.StartupID); err != nil {
		return nil, err
	}

	return task, nil
}
