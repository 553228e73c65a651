package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// startupService implements the StartupUsecase interface.
type startupService struct {
	startups repository.StartupRepository
	guard    *ownershipGuard
	progress *progressTracker
	logger   *slog.Logger
}

// StartupServiceParams holds dependencies for StartupService, injected by Fx.
type StartupServiceParams struct {
	fx.In

	Startups  repository.StartupRepository
	Tasks     repository.TaskRepository
	Sections  repository.SectionRepositories
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewStartupService is the constructor for startupService.
func NewStartupService(params StartupServiceParams) usecase.StartupUsecase {
	return &startupService{
		startups: params.Startups,
		guard:    newOwnershipGuard(params.Startups, params.Tasks),
		progress: &progressTracker{
			startups: params.Startups,
			sections: params.Sections,
			events:   &eventBus{publisher: params.Publisher, logger: params.Logger, now: time.Now},
			logger:   params.Logger,
		},
		logger: params.Logger,
	}
}

func (srv *startupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *startupService) List(ctx context.Context, userID int64) ([]*entity.Startup, error) {
	startups, err := srv.startups.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list startups")
	}

	return startups, nil
}

func (srv *startupService) Create(ctx context.Context, userID int64, input *usecase.CreateStartupInput) (*entity.Startup, error) {
	stage := input.Stage
	if stage == "" {
		stage = entity.StageIdea
	}

	startup := &entity.Startup{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Industry:    input.Industry,
		Stage:       stage,
	}
	if err := srv.startups.Create(ctx, startup); err != nil {
		return nil, errors.Wrap(err, "failed to create startup")
	}

	srv.log(ctx).Info("Startup created", slog.Int64("startup_id", startup.ID), slog.Int64("userID", userID))

	return startup, nil
}

func (srv *startupService) Get(ctx context.Context, userID, startupID int64) (*entity.Startup, error) {
	return srv.guard.authorize(ctx, userID, startupID)
}

func (srv *startupService) Update(ctx context.Context, userID, startupID int64, update entity.StartupUpdate) (*entity.Startup, error) {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, err
	}

	startup, err := srv.startups.Update(ctx, startupID, update)
	if errors.Is(err, repository.ErrStartupNotFound) {
		return nil, domainerrors.ErrStartupNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update startup")
	}

	return startup, nil
}

func (srv *startupService) Delete(ctx context.Context, userID, startupID int64) error {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return err
	}

	removed, err := srv.startups.Delete(ctx, startupID)
	if err != nil {
		return errors.Wrap(err, "failed to delete startup")
	}
	if !removed {
		return domainerrors.ErrStartupNotFound
	}

	srv.log(ctx).Info("Startup deleted", slog.Int64("startup_id", startupID))

	return nil
}

func (srv *startupService) Progress(ctx context.Context, userID, startupID int64) (*entity.ProgressBreakdown, error) {
	startup, err := srv.guard.authorize(ctx, userID, startupID)
	if err != nil {
		return nil, err
	}

	return srv.progress.breakdown(ctx, startup)
}
