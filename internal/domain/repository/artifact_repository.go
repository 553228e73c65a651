package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrArtifactNotFound is returned when a startup has no artifact of a kind.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactRepository persists extended planning artifacts, one per startup and kind.
type ArtifactRepository interface {
	FindByStartupID(ctx context.Context, startupID int64) ([]*entity.Artifact, error)
	FindByKind(ctx context.Context, startupID int64, kind entity.ArtifactKind) (*entity.Artifact, error)

	// UpsertByKind loads or creates the startup's artifact of kind, hands it to
	// mutate and stores the result. created reports whether a row was inserted.
	UpsertByKind(ctx context.Context, startupID int64, kind entity.ArtifactKind, mutate func(*entity.Artifact) error) (row *entity.Artifact, created bool, err error)
}
