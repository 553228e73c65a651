package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// NotificationUsecase manages a user's in-app notifications.
type NotificationUsecase interface {
	List(ctx context.Context, userID int64, unreadOnly bool) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, notificationID int64) (*entity.Notification, error)
	// MarkAllRead returns how many notifications changed.
	MarkAllRead(ctx context.Context, userID int64) (int, error)
}
