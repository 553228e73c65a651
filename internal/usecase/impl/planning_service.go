package impl

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sectionService implements SectionUsecase for one planning section type.
type sectionService[T any, P entity.SectionPtr[T]] struct {
	kind     entity.SectionKind
	repo     repository.SectionRepository[T]
	guard    *ownershipGuard
	progress *progressTracker
	events   *eventBus
	logger   *slog.Logger
}

func newSectionService[T any, P entity.SectionPtr[T]](
	repo repository.SectionRepository[T],
	guard *ownershipGuard,
	progress *progressTracker,
	events *eventBus,
	logger *slog.Logger,
) *sectionService[T, P] {
	var zero T

	return &sectionService[T, P]{
		kind:     P(&zero).Kind(),
		repo:     repo,
		guard:    guard,
		progress: progress,
		events:   events,
		logger:   logger,
	}
}

func (srv *sectionService[T, P]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sectionService[T, P]) Get(ctx context.Context, userID, startupID int64) (*T, error) {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, err
	}

	row, err := srv.repo.FindByStartupID(ctx, startupID)
	if errors.Is(err, repository.ErrSectionNotFound) {
		return nil, domainerrors.ErrSectionNotFound.WithMessage(srv.kind.Label() + " not found")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s", srv.kind)
	}

	return row, nil
}

func (srv *sectionService[T, P]) Save(ctx context.Context, userID, startupID int64, input *T) (*T, bool, error) {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, false, err
	}

	row, created, err := srv.repo.UpsertByStartupID(ctx, startupID, func(current *T) error {
		return mergeSection[T, P](current, input)
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to save %s", srv.kind)
	}

	srv.log(ctx).Debug("Planning section saved",
		slog.String("section", string(srv.kind)),
		slog.Int64("startup_id", startupID),
		slog.Bool("created", created),
	)

	if created {
		srv.progress.recalculate(ctx, startupID)
		srv.events.publish(ctx, &service.DomainEvent{
			Type:       constants.EventSectionCreated,
			UserID:     userID,
			StartupID:  startupID,
			EntityID:   P(row).Meta().ID,
			Attributes: map[string]string{"section": string(srv.kind)},
		})
	}

	return row, created, nil
}

// mergeSection copies the non-empty fields of input onto current and keeps
// current's identity.
func mergeSection[T any, P entity.SectionPtr[T]](current, input *T) error {
	if input == nil {
		return nil
	}

	meta := *P(current).Meta()
	if err := mergeDocument(current, input); err != nil {
		return errors.Wrap(err, "failed to merge section fields")
	}
	*P(current).Meta() = meta

	return nil
}

// mergeDocument copies the non-empty fields of src onto dst. Lists are
// replaced whole; nested documents present on both sides are merged field by
// field into a fresh copy of dst's document.
func mergeDocument(dst, src any) error {
	d := reflect.ValueOf(dst).Elem()
	s := reflect.ValueOf(src).Elem()

	nested := make(map[int]reflect.Value)
	for i := range d.NumField() {
		df, sf := d.Field(i), s.Field(i)
		if !d.Type().Field(i).IsExported() || !isDocumentPtr(df.Type()) || df.IsNil() || sf.IsNil() {
			continue
		}
		prev := reflect.New(df.Type().Elem())
		prev.Elem().Set(df.Elem())
		nested[i] = prev
		df.Set(reflect.Zero(df.Type()))
	}

	if err := copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: true}); err != nil {
		return errors.WithStack(err)
	}

	for i, prev := range nested {
		if err := mergeDocument(prev.Interface(), s.Field(i).Interface()); err != nil {
			return err
		}
		d.Field(i).Set(prev)
	}

	return nil
}

var timeType = reflect.TypeFor[time.Time]()

func isDocumentPtr(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct && t.Elem() != timeType
}

// PlanningParams holds dependencies for the planning use cases, injected by Fx.
type PlanningParams struct {
	fx.In

	Startups      repository.StartupRepository
	Tasks         repository.TaskRepository
	Sections      repository.SectionRepositories
	Notifications repository.NotificationRepository
	Publisher     service.EventPublisher
	Push          service.NotificationService `optional:"true"`
	Logger        *slog.Logger
}

// NewPlanningUsecases builds the six section use cases around one shared
// ownership guard and progress tracker.
func NewPlanningUsecases(params PlanningParams) usecase.PlanningUsecases {
	guard := newOwnershipGuard(params.Startups, params.Tasks)
	events := &eventBus{publisher: params.Publisher, logger: params.Logger, now: time.Now}
	progress := &progressTracker{
		startups: params.Startups,
		sections: params.Sections,
		notifier: &notifier{notifications: params.Notifications, push: params.Push, logger: params.Logger},
		events:   events,
		logger:   params.Logger,
	}
	s := params.Sections

	return usecase.PlanningUsecases{
		Idea:          newSectionService[entity.StartupIdea](s.Ideas, guard, progress, events, params.Logger),
		Audience:      newSectionService[entity.TargetAudience](s.Audiences, guard, progress, events, params.Logger),
		BusinessModel: newSectionService[entity.BusinessModel](s.BusinessModels, guard, progress, events, params.Logger),
		Competition:   newSectionService[entity.Competitor](s.Competitors, guard, progress, events, params.Logger),
		Revenue:       newSectionService[entity.RevenueModel](s.RevenueModels, guard, progress, events, params.Logger),
		Mvp:           newSectionService[entity.Mvp](s.Mvps, guard, progress, events, params.Logger),
	}
}
