package memory

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type sectionRepository[T any, PT entity.SectionPtr[T]] struct {
	store *Store
	rows  func(*Store) *table[T]
}

func newSectionRepository[T any, PT entity.SectionPtr[T]](store *Store, rows func(*Store) *table[T]) repository.SectionRepository[T] {
	return &sectionRepository[T, PT]{store: store, rows: rows}
}

// NewSectionRepositories creates the six memory-backed planning section repositories.
func NewSectionRepositories(store *Store) repository.SectionRepositories {
	return repository.SectionRepositories{
		Ideas:          newSectionRepository(store, func(s *Store) *table[entity.StartupIdea] { return s.ideas }),
		Audiences:      newSectionRepository(store, func(s *Store) *table[entity.TargetAudience] { return s.audiences }),
		BusinessModels: newSectionRepository(store, func(s *Store) *table[entity.BusinessModel] { return s.businessModels }),
		Competitors:    newSectionRepository(store, func(s *Store) *table[entity.Competitor] { return s.competitors }),
		RevenueModels:  newSectionRepository(store, func(s *Store) *table[entity.RevenueModel] { return s.revenueModels }),
		Mvps:           newSectionRepository(store, func(s *Store) *table[entity.Mvp] { return s.mvps }),
	}
}

func (r *sectionRepository[T, PT]) byStartup(startupID int64) func(*T) bool {
	return func(row *T) bool { return PT(row).Meta().StartupID == startupID }
}

func (r *sectionRepository[T, PT]) FindByStartupID(_ context.Context, startupID int64) (*T, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.rows(r.store).first(r.byStartup(startupID))
	if !ok {
		return nil, repository.ErrSectionNotFound
	}
	return row, nil
}

// UpsertByStartupID runs mutate under the store lock; mutate must not call back into the store.
func (r *sectionRepository[T, PT]) UpsertByStartupID(_ context.Context, startupID int64, mutate func(*T) error) (*T, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tbl := r.rows(r.store)
	row, found := tbl.first(r.byStartup(startupID))
	if !found {
		row = new(T)
		PT(row).ApplyDefaults()
	}

	meta := *PT(row).Meta()
	if err := mutate(row); err != nil {
		return nil, false, err
	}

	now := r.store.now()
	if !found {
		meta.ID = tbl.nextID()
		meta.StartupID = startupID
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now
	*PT(row).Meta() = meta

	tbl.put(meta.ID, row)
	return row, !found, nil
}
