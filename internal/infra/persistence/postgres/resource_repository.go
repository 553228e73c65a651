package postgres

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a GORM-backed resource repository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (repo *resourceRepository) list(q *gorm.DB) ([]*entity.Resource, error) {
	var rows []*model.ResourceModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list resources")
	}

	out := make([]*entity.Resource, 0, len(rows))
	for _, m := range rows {
		r, err := toResourceDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (repo *resourceRepository) FindAll(ctx context.Context) ([]*entity.Resource, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *resourceRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Resource, error) {
	return repo.list(repo.db.WithContext(ctx).Where("category = ?", category))
}

func (repo *resourceRepository) FindByIndustry(ctx context.Context, industry string) ([]*entity.Resource, error) {
	return repo.list(repo.db.WithContext(ctx).Where("industry IS NULL OR industry = ?", industry))
}

func (repo *resourceRepository) FindByID(ctx context.Context, id int64) (*entity.Resource, error) {
	var m model.ResourceModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrResourceNotFound, "failed to find resource")
	}
	return toResourceDomain(&m)
}
