package impl

import (
	"context"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
)

type resourceService struct {
	resources repository.ResourceRepository
}

// NewResourceService is the constructor for resourceService.
func NewResourceService(resources repository.ResourceRepository) usecase.ResourceUsecase {
	return &resourceService{resources: resources}
}

func (srv *resourceService) List(ctx context.Context) ([]*entity.Resource, error) {
	rows, err := srv.resources.FindAll(ctx)

	return rows, errors.Wrap(err, "failed to list resources")
}

func (srv *resourceService) ListByCategory(ctx context.Context, category string) ([]*entity.Resource, error) {
	rows, err := srv.resources.FindByCategory(ctx, category)

	return rows, errors.Wrap(err, "failed to list resources by category")
}

func (srv *resourceService) ListByIndustry(ctx context.Context, industry string) ([]*entity.Resource, error) {
	rows, err := srv.resources.FindByIndustry(ctx, industry)

	return rows, errors.Wrap(err, "failed to list resources by industry")
}

func (srv *resourceService) Get(ctx context.Context, id int64) (*entity.Resource, error) {
	row, err := srv.resources.FindByID(ctx, id)
	if errors.Is(err, repository.ErrResourceNotFound) {
		return nil, domainerrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find resource")
	}

	return row, nil
}
