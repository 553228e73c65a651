package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// ArtifactInput is the editable content of an artifact.
type ArtifactInput struct {
	Title   string
	Summary string
	Items   []entity.ArtifactItem
}

// ArtifactUsecase manages the extended planning artifacts of an owned startup.
type ArtifactUsecase interface {
	List(ctx context.Context, userID, startupID int64) ([]*entity.Artifact, error)
	Get(ctx context.Context, userID, startupID int64, kind entity.ArtifactKind) (*entity.Artifact, error)
	// Save upserts the artifact of kind; created reports whether it was new.
	Save(ctx context.Context, userID, startupID int64, kind entity.ArtifactKind, input *ArtifactInput) (row *entity.Artifact, created bool, err error)
}
