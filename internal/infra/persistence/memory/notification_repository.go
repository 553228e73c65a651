package memory

import (
	"context"
	"slices"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a memory-backed notification repository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) Create(_ context.Context, n *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n.ID = r.store.notifications.nextID()
	n.CreatedAt = r.store.now()
	r.store.notifications.put(n.ID, n)
	return nil
}

func (r *notificationRepository) FindByID(_ context.Context, id int64) (*entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.notifications.get(id)
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}
	return n, nil
}

func (r *notificationRepository) FindByUserID(_ context.Context, userID int64, unreadOnly bool) ([]*entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := r.store.notifications.filter(func(n *entity.Notification) bool {
		return n.UserID == userID && (!unreadOnly || !n.Read)
	})
	slices.Reverse(rows)
	return rows, nil
}

func (r *notificationRepository) CountUnread(_ context.Context, userID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.notifications.filter(func(n *entity.Notification) bool {
		return n.UserID == userID && !n.Read
	})), nil
}

func (r *notificationRepository) MarkRead(_ context.Context, id int64) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.notifications.get(id)
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}

	n.Read = true
	r.store.notifications.put(id, n)
	return n, nil
}

func (r *notificationRepository) MarkAllRead(_ context.Context, userID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	unread := r.store.notifications.filter(func(n *entity.Notification) bool {
		return n.UserID == userID && !n.Read
	})
	for _, n := range unread {
		n.Read = true
		r.store.notifications.put(n.ID, n)
	}
	return len(unread), nil
}
