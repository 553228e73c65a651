package impl

import (
	"context"
	"log/slog"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	startups repository.StartupRepository
	notifier *notifier
	logger   *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	Startups      repository.StartupRepository
	Notifications repository.NotificationRepository
	Push          service.NotificationService `optional:"true"`
	Logger        *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		startups: params.Startups,
		notifier: &notifier{notifications: params.Notifications, push: params.Push, logger: params.Logger},
		logger:   params.Logger,
	}
}

func (srv *eventService) Handle(ctx context.Context, event *service.DomainEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	switch event.Type {
	case constants.EventStartupExported:
		return srv.exportReady(ctx, event)
	default:
		logger.Debug("Ignoring domain event",
			slog.String("event_type", event.Type),
			slog.Int64("startup_id", event.StartupID),
		)

		return nil
	}
}

// exportReady tells the owner where the published bundle landed.
func (srv *eventService) exportReady(ctx context.Context, event *service.DomainEvent) error {
	startup, err := srv.startups.FindByID(ctx, event.StartupID)
	if errors.Is(err, repository.ErrStartupNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Startup gone before export notice",
			slog.Int64("startup_id", event.StartupID),
		)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find startup")
	}

	relatedType := entity.RelatedStartup
	relatedID := startup.ID

	return srv.notifier.notify(ctx, &entity.Notification{
		UserID:      startup.UserID,
		Type:        entity.NotificationSystem,
		Title:       "Export ready",
		Message:     startup.Name + " was exported to " + event.Attributes["key"] + ".",
		RelatedID:   &relatedID,
		RelatedType: &relatedType,
	})
}
