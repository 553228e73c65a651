package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrResourceNotFound is returned when a resource does not exist.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceRepository reads the curated resource library. Resources are seeded
// when the store starts and never change at runtime.
type ResourceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Resource, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Resource, error)

	// FindByIndustry includes resources with no industry set.
	FindByIndustry(ctx context.Context, industry string) ([]*entity.Resource, error)

	FindByID(ctx context.Context, id int64) (*entity.Resource, error)
}
