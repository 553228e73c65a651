package memory

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type startupRepository struct {
	store *Store
}

// NewStartupRepository creates a memory-backed startup repository.
func NewStartupRepository(store *Store) repository.StartupRepository {
	return &startupRepository{store: store}
}

func (r *startupRepository) FindByID(_ context.Context, id int64) (*entity.Startup, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.startups.get(id)
	if !ok {
		return nil, repository.ErrStartupNotFound
	}
	return s, nil
}

func (r *startupRepository) FindByUserID(_ context.Context, userID int64) ([]*entity.Startup, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.startups.filter(func(s *entity.Startup) bool { return s.UserID == userID }), nil
}

func (r *startupRepository) Create(_ context.Context, startup *entity.Startup) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	startup.ID = r.store.startups.nextID()
	startup.CreatedAt = now
	startup.UpdatedAt = now
	r.store.startups.put(startup.ID, startup)
	return nil
}

func (r *startupRepository) Update(_ context.Context, id int64, update entity.StartupUpdate) (*entity.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.startups.get(id)
	if !ok {
		return nil, repository.ErrStartupNotFound
	}

	update.Apply(s)
	s.UpdatedAt = r.store.now()
	r.store.startups.put(id, s)
	return s, nil
}

func (r *startupRepository) UpdateProgress(_ context.Context, id int64, progress int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.startups.get(id)
	if !ok {
		return repository.ErrStartupNotFound
	}

	s.Progress = progress
	s.UpdatedAt = r.store.now()
	r.store.startups.put(id, s)
	return nil
}

func (r *startupRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.startups.remove(id) {
		return false, nil
	}
	r.store.deleteStartupChildren(id)
	return true, nil
}
