package postgres

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a GORM-backed notification repository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	m := &model.NotificationModel{
		UserID:      n.UserID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		Read:        n.Read,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	*n = *toNotificationDomain(m)
	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id int64) (*entity.Notification, error) {
	var m model.NotificationModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrNotificationNotFound, "failed to find notification")
	}
	return toNotificationDomain(&m), nil
}

func (repo *notificationRepository) FindByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]*entity.Notification, error) {
	q := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var rows []*model.NotificationModel
	if err := q.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	out := make([]*entity.Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, toNotificationDomain(m))
	}
	return out, nil
}

func (repo *notificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notifications")
	}
	return int(count), nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id int64) (*entity.Notification, error) {
	var m model.NotificationModel
	res := repo.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "failed to mark notification read")
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotificationNotFound
	}
	return toNotificationDomain(&m), nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	res := repo.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "failed to mark notifications read")
	}
	return int(res.RowsAffected), nil
}

