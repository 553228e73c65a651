package memory

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type resourceRepository struct {
	store *Store
}

// NewResourceRepository creates a memory-backed resource repository.
func NewResourceRepository(store *Store) repository.ResourceRepository {
	return &resourceRepository{store: store}
}

func (r *resourceRepository) FindAll(_ context.Context) ([]*entity.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.resources.filter(nil), nil
}

func (r *resourceRepository) FindByCategory(_ context.Context, category string) ([]*entity.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.resources.filter(func(res *entity.Resource) bool { return res.Category == category }), nil
}

func (r *resourceRepository) FindByIndustry(_ context.Context, industry string) ([]*entity.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.resources.filter(func(res *entity.Resource) bool { return res.MatchesIndustry(industry) }), nil
}

func (r *resourceRepository) FindByID(_ context.Context, id int64) (*entity.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.resources.get(id)
	if !ok {
		return nil, repository.ErrResourceNotFound
	}
	return res, nil
}
