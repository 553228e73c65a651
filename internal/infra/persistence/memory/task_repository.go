package memory

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type taskRepository struct {
	store *Store
}

// NewTaskRepository creates a memory-backed task repository.
func NewTaskRepository(store *Store) repository.TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) FindByID(_ context.Context, id int64) (*entity.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tasks.get(id)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return t, nil
}

func (r *taskRepository) FindByStartupID(_ context.Context, startupID int64, filter repository.TaskFilter) ([]*entity.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.tasks.filter(func(t *entity.Task) bool {
		return t.StartupID == startupID && (filter.Status == "" || t.Status == filter.Status)
	}), nil
}

func (r *taskRepository) Create(_ context.Context, task *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	task.ID = r.store.tasks.nextID()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.store.tasks.put(task.ID, task)
	return nil
}

func (r *taskRepository) Update(_ context.Context, task *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.tasks.get(task.ID)
	if !ok {
		return repository.ErrTaskNotFound
	}

	task.StartupID = existing.StartupID
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = r.store.now()
	r.store.tasks.put(task.ID, task)
	return nil
}

func (r *taskRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.tasks.remove(id), nil
}
