package memory

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type artifactRepository struct {
	store *Store
}

// NewArtifactRepository creates a memory-backed artifact repository.
func NewArtifactRepository(store *Store) repository.ArtifactRepository {
	return &artifactRepository{store: store}
}

func (r *artifactRepository) FindByStartupID(_ context.Context, startupID int64) ([]*entity.Artifact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.artifacts.filter(func(a *entity.Artifact) bool { return a.StartupID == startupID }), nil
}

func (r *artifactRepository) FindByKind(_ context.Context, startupID int64, kind entity.ArtifactKind) (*entity.Artifact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.artifacts.first(func(a *entity.Artifact) bool { return a.StartupID == startupID && a.Kind == kind })
	if !ok {
		return nil, repository.ErrArtifactNotFound
	}
	return a, nil
}

// UpsertByKind runs mutate under the store lock; mutate must not call back into the store.
func (r *artifactRepository) UpsertByKind(_ context.Context, startupID int64, kind entity.ArtifactKind, mutate func(*entity.Artifact) error) (*entity.Artifact, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, found := r.store.artifacts.first(func(a *entity.Artifact) bool { return a.StartupID == startupID && a.Kind == kind })
	if !found {
		row = &entity.Artifact{Items: []entity.ArtifactItem{}}
	}

	id, createdAt := row.ID, row.CreatedAt
	if err := mutate(row); err != nil {
		return nil, false, err
	}

	now := r.store.now()
	if !found {
		id = r.store.artifacts.nextID()
		createdAt = now
	}
	row.ID = id
	row.StartupID = startupID
	row.Kind = kind
	row.CreatedAt = createdAt
	row.UpdatedAt = now

	r.store.artifacts.put(id, row)
	return row, !found, nil
}
