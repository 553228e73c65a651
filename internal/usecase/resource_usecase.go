package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// ResourceUsecase reads the public resource library.
type ResourceUsecase interface {
	List(ctx context.Context) ([]*entity.Resource, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Resource, error)
	// ListByIndustry includes resources that apply to every industry.
	ListByIndustry(ctx context.Context, industry string) ([]*entity.Resource, error)
	Get(ctx context.Context, id int64) (*entity.Resource, error)
}
