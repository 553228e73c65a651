package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"

	"github.com/pkg/errors"
)

// eventBus stamps and publishes domain events. Publishing never fails the caller.
type eventBus struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (b *eventBus) publish(ctx context.Context, event *service.DomainEvent) {
	if b == nil || b.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = b.now().UTC()

	if err := b.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Failed to publish domain event",
			slog.String("event_type", event.Type),
			slog.Int64("startup_id", event.StartupID),
			slog.Any("error", err),
		)
	}
}

// notifier stores in-app notifications and mirrors them to push when configured.
type notifier struct {
	notifications repository.NotificationRepository
	push          service.NotificationService // nil disables push
	logger        *slog.Logger
}

func (n *notifier) notify(ctx context.Context, notification *entity.Notification) error {
	if err := n.notifications.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	if n.push == nil {
		return nil
	}

	data := map[string]string{"type": notification.Type}
	if notification.RelatedType != nil && notification.RelatedID != nil {
		data["related_type"] = *notification.RelatedType
		data["related_id"] = formatID(*notification.RelatedID)
	}

	topic := service.UserTopic(notification.UserID)
	if err := n.push.SendToTopic(ctx, topic, notification.Title, notification.Message, data); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to push notification",
			slog.String("topic", topic),
			slog.Int64("notification_id", notification.ID),
			slog.Any("error", err),
		)
	}

	return nil
}
