package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id int64) (*entity.Notification, error)

	// FindByUserID lists a user's notifications newest first.
	FindByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]*entity.Notification, error)

	CountUnread(ctx context.Context, userID int64) (int, error)

	// MarkRead flags one notification as read and returns it.
	MarkRead(ctx context.Context, id int64) (*entity.Notification, error)

	// MarkAllRead flags every unread notification of a user and returns how many changed.
	MarkAllRead(ctx context.Context, userID int64) (int, error)
}
