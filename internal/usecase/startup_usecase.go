package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// CreateStartupInput defines the data required to start a plan.
type CreateStartupInput struct {
	Name        string
	Description string
	Industry    string
	Stage       string // defaults to entity.StageIdea
}

// StartupUsecase manages a user's startups. Every call that names a startup
// fails with ErrStartupNotFound or ErrStartupForbidden unless userID owns it.
type StartupUsecase interface {
	List(ctx context.Context, userID int64) ([]*entity.Startup, error)
	Create(ctx context.Context, userID int64, input *CreateStartupInput) (*entity.Startup, error)
	Get(ctx context.Context, userID, startupID int64) (*entity.Startup, error)
	Update(ctx context.Context, userID, startupID int64, update entity.StartupUpdate) (*entity.Startup, error)
	// Delete removes the startup and everything planned under it.
	Delete(ctx context.Context, userID, startupID int64) error
	Progress(ctx context.Context, userID, startupID int64) (*entity.ProgressBreakdown, error)
}
