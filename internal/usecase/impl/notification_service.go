package impl

import (
	"context"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notifications repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notifications: notifications}
}

func (srv *notificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]*entity.Notification, error) {
	rows, err := srv.notifications.FindByUserID(ctx, userID, unreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return rows, nil
}

func (srv *notificationService) CountUnread(ctx context.Context, userID int64) (int, error) {
	n, err := srv.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count notifications")
	}

	return n, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID int64) (*entity.Notification, error) {
	row, err := srv.notifications.FindByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification")
	}
	if row.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}
	if row.Read {
		return row, nil
	}

	row, err = srv.notifications.MarkRead(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark notification read")
	}

	return row, nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	n, err := srv.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return n, nil
}
