package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrStartupNotFound is returned when a startup does not exist.
var ErrStartupNotFound = errors.New("startup not found")

// StartupRepository persists startups.
type StartupRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Startup, error)

	// FindByUserID lists the startups owned by a user, oldest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Startup, error)

	Create(ctx context.Context, startup *entity.Startup) error

	// Update applies a partial update and returns the stored row.
	Update(ctx context.Context, id int64, update entity.StartupUpdate) (*entity.Startup, error)

	// UpdateProgress stores a recalculated completion percentage.
	UpdateProgress(ctx context.Context, id int64, progress int) error

	// Delete removes the startup together with its sections, tasks and artifacts.
	// It reports whether a startup was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
