package postgres

import (
	"context"
	"time"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type artifactRepository struct {
	db *gorm.DB
}

// NewArtifactRepository creates a GORM-backed artifact repository.
func NewArtifactRepository(db *gorm.DB) repository.ArtifactRepository {
	return &artifactRepository{db: db}
}

func (repo *artifactRepository) FindByStartupID(ctx context.Context, startupID int64) ([]*entity.Artifact, error) {
	var rows []*model.ArtifactModel
	if err := repo.db.WithContext(ctx).Where("startup_id = ?", startupID).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artifacts")
	}

	out := make([]*entity.Artifact, 0, len(rows))
	for _, m := range rows {
		a, err := toArtifactDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (repo *artifactRepository) FindByKind(ctx context.Context, startupID int64, kind entity.ArtifactKind) (*entity.Artifact, error) {
	var m model.ArtifactModel
	if err := repo.db.WithContext(ctx).Where("startup_id = ? AND kind = ?", startupID, string(kind)).First(&m).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrArtifactNotFound, "failed to find artifact")
	}
	return toArtifactDomain(&m)
}

func (repo *artifactRepository) UpsertByKind(ctx context.Context, startupID int64, kind entity.ArtifactKind, mutate func(*entity.Artifact) error) (*entity.Artifact, bool, error) {
	var (
		out     *entity.Artifact
		created bool
	)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.ArtifactModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("startup_id = ? AND kind = ?", startupID, string(kind)).
			First(&m).Error

		var row *entity.Artifact
		switch {
		case err == nil:
			if row, err = toArtifactDomain(&m); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			row = &entity.Artifact{Items: []entity.ArtifactItem{}}
		default:
			return errors.Wrap(err, "failed to load artifact")
		}

		id, createdAt := row.ID, row.CreatedAt
		if err := mutate(row); err != nil {
			return err
		}

		now := time.Now().UTC()
		if created {
			createdAt = now
		}
		row.ID = id
		row.StartupID = startupID
		row.Kind = kind
		row.CreatedAt = createdAt
		row.UpdatedAt = now

		next, err := fromArtifactDomain(row)
		if err != nil {
			return err
		}
		if created {
			next.ID = 0
			if err := tx.Create(next).Error; err != nil {
				return errors.Wrap(err, "failed to create artifact")
			}
		} else if err := tx.Save(next).Error; err != nil {
			return errors.Wrap(err, "failed to update artifact")
		}

		out, err = toArtifactDomain(next)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return out, created, nil
}
