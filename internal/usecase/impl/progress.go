package impl

import (
	"context"
	"log/slog"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"

	"github.com/pkg/errors"
)

// progressTracker keeps Startup.Progress in step with the saved sections.
type progressTracker struct {
	startups repository.StartupRepository
	sections repository.SectionRepositories
	notifier *notifier
	events   *eventBus
	logger   *slog.Logger
}

// recalculate is best effort: a vanished startup is a no-op and failures are
// only logged.
func (p *progressTracker) recalculate(ctx context.Context, startupID int64) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	if err := p.update(ctx, startupID); err != nil {
		logger.Error("Failed to recalculate startup progress",
			slog.Int64("startup_id", startupID),
			slog.Any("error", err),
		)
	}
}

func (p *progressTracker) update(ctx context.Context, startupID int64) error {
	startup, err := p.startups.FindByID(ctx, startupID)
	if errors.Is(err, repository.ErrStartupNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find startup")
	}

	plan, err := loadPlan(ctx, p.sections, startupID)
	if err != nil {
		return err
	}

	progress := service.CalculateProgress(plan.completed())
	if progress == startup.Progress {
		return nil
	}

	err = p.startups.UpdateProgress(ctx, startupID, progress)
	if errors.Is(err, repository.ErrStartupNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to store progress")
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Startup progress updated",
		slog.Int64("startup_id", startupID),
		slog.Int("progress", progress),
	)

	p.events.publish(ctx, &service.DomainEvent{
		Type:       constants.EventProgressUpdated,
		UserID:     startup.UserID,
		StartupID:  startupID,
		Attributes: map[string]string{"progress": formatID(int64(progress))},
	})

	if progress == service.CalculateProgress(service.PlanningSectionCount) && p.notifier != nil {
		relatedType := entity.RelatedStartup
		relatedID := startupID
		err := p.notifier.notify(ctx, &entity.Notification{
			UserID:      startup.UserID,
			Type:        entity.NotificationProgress,
			Title:       "Plan complete",
			Message:     "Every planning section of " + startup.Name + " is filled in.",
			RelatedID:   &relatedID,
			RelatedType: &relatedType,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// breakdown reports which sections exist alongside the stored percentage.
func (p *progressTracker) breakdown(ctx context.Context, startup *entity.Startup) (*entity.ProgressBreakdown, error) {
	plan, err := loadPlan(ctx, p.sections, startup.ID)
	if err != nil {
		return nil, err
	}

	return &entity.ProgressBreakdown{
		StartupID: startup.ID,
		Progress:  startup.Progress,
		Completed: plan.completed(),
		Total:     service.PlanningSectionCount,
		Sections:  plan.present(),
	}, nil
}
