package postgres

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type startupRepository struct {
	db *gorm.DB
}

// NewStartupRepository creates a GORM-backed startup repository.
func NewStartupRepository(db *gorm.DB) repository.StartupRepository {
	return &startupRepository{db: db}
}

func (repo *startupRepository) FindByID(ctx context.Context, id int64) (*entity.Startup, error) {
	var m model.StartupModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrStartupNotFound, "failed to find startup")
	}

	return toStartupDomain(&m), nil
}

func (repo *startupRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Startup, error) {
	var rows []*model.StartupModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list startups")
	}

	out := make([]*entity.Startup, 0, len(rows))
	for _, m := range rows {
		out = append(out, toStartupDomain(m))
	}
	return out, nil
}

func (repo *startupRepository) Create(ctx context.Context, startup *entity.Startup) error {
	m := fromStartupDomain(startup)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create startup")
	}

	*startup = *toStartupDomain(m)
	return nil
}

func (repo *startupRepository) Update(ctx context.Context, id int64, update entity.StartupUpdate) (*entity.Startup, error) {
	var out *entity.Startup
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.StartupModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return notFoundOr(err, repository.ErrStartupNotFound, "failed to load startup")
		}

		s := toStartupDomain(&m)
		update.Apply(s)
		m = *fromStartupDomain(s)
		if err := tx.Save(&m).Error; err != nil {
			return errors.Wrap(err, "failed to update startup")
		}

		out = toStartupDomain(&m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (repo *startupRepository) UpdateProgress(ctx context.Context, id int64, progress int) error {
	res := repo.db.WithContext(ctx).Model(&model.StartupModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"progress": progress, "updated_at": gorm.Expr("NOW()")})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update progress")
	}
	if res.RowsAffected == 0 {
		return repository.ErrStartupNotFound
	}
	return nil
}

func (repo *startupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range sectionTables {
			if err := tx.Table(table).Where("startup_id = ?", id).Delete(&model.SectionModel{}).Error; err != nil {
				return errors.Wrapf(err, "failed to delete %s", table)
			}
		}
		if err := tx.Where("startup_id = ?", id).Delete(&model.TaskModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete tasks")
		}
		if err := tx.Where("startup_id = ?", id).Delete(&model.ArtifactModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete artifacts")
		}

		res := tx.Delete(&model.StartupModel{}, id)
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to delete startup")
		}
		removed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
