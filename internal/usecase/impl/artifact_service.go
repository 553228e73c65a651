package impl

import (
	"context"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
)

type artifactService struct {
	artifacts repository.ArtifactRepository
	guard     *ownershipGuard
}

// NewArtifactService is the constructor for artifactService.
func NewArtifactService(
	startups repository.StartupRepository,
	tasks repository.TaskRepository,
	artifacts repository.ArtifactRepository,
) usecase.ArtifactUsecase {
	return &artifactService{
		artifacts: artifacts,
		guard:     newOwnershipGuard(startups, tasks),
	}
}

func (srv *artifactService) List(ctx context.Context, userID, startupID int64) ([]*entity.Artifact, error) {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, err
	}

	rows, err := srv.artifacts.FindByStartupID(ctx, startupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artifacts")
	}

	return rows, nil
}

func (srv *artifactService) Get(ctx context.Context, userID, startupID int64, kind entity.ArtifactKind) (*entity.Artifact, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidArtifactKind
	}
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, err
	}

	row, err := srv.artifacts.FindByKind(ctx, startupID, kind)
	if errors.Is(err, repository.ErrArtifactNotFound) {
		return nil, domainerrors.ErrArtifactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find artifact")
	}

	return row, nil
}

func (srv *artifactService) Save(ctx context.Context, userID, startupID int64, kind entity.ArtifactKind, input *usecase.ArtifactInput) (*entity.Artifact, bool, error) {
	if !kind.IsValid() {
		return nil, false, domainerrors.ErrInvalidArtifactKind
	}
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, false, err
	}

	row, created, err := srv.artifacts.UpsertByKind(ctx, startupID, kind, func(a *entity.Artifact) error {
		applyArtifactInput(a, input)

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to save artifact")
	}

	return row, created, nil
}

// applyArtifactInput keeps stored values for fields the input leaves empty.
func applyArtifactInput(a *entity.Artifact, input *usecase.ArtifactInput) {
	if input.Title != "" {
		a.Title = input.Title
	}
	if input.Summary != "" {
		a.Summary = input.Summary
	}
	if input.Items != nil {
		a.Items = input.Items
	}
	if a.Items == nil {
		a.Items = []entity.ArtifactItem{}
	}
}
