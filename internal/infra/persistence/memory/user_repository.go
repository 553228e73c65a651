package memory

import (
	"context"
	"strings"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a memory-backed user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.get(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.first(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.first(func(u *entity.User) bool { return u.Username == username })
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.users.first(func(u *entity.User) bool {
		return u.Username == user.Username || strings.EqualFold(u.Email, user.Email)
	}); taken {
		return repository.ErrUserConflict
	}

	now := r.store.now()
	user.ID = r.store.users.nextID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users.put(user.ID, user)
	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users.get(user.ID)
	if !ok {
		return repository.ErrUserNotFound
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = r.store.now()
	r.store.users.put(user.ID, user)
	return nil
}
