package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"launchpad/config"
	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"
	"launchpad/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	sections     repository.SectionRepositories
	tasks        repository.TaskRepository
	artifacts    repository.ArtifactRepository
	storage      service.ExportStorage // nil disables Publish
	qrcode       service.QRCodeService
	shareBaseURL string
	guard        *ownershipGuard
	events       *eventBus
	now          func() time.Time
	logger       *slog.Logger
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	Startups  repository.StartupRepository
	Tasks     repository.TaskRepository
	Sections  repository.SectionRepositories
	Artifacts repository.ArtifactRepository
	Storage   service.ExportStorage `optional:"true"`
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	shareBaseURL := ""
	if params.Config.Export != nil {
		shareBaseURL = strings.TrimRight(params.Config.Export.ShareBaseURL, "/")
	}

	return &exportService{
		sections:     params.Sections,
		tasks:        params.Tasks,
		artifacts:    params.Artifacts,
		storage:      params.Storage,
		qrcode:       params.QRCode,
		shareBaseURL: shareBaseURL,
		guard:        newOwnershipGuard(params.Startups, params.Tasks),
		events:       &eventBus{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *exportService) Build(ctx context.Context, userID, startupID int64) (*entity.ExportBundle, error) {
	startup, err := srv.guard.authorize(ctx, userID, startupID)
	if err != nil {
		return nil, err
	}

	return srv.bundle(ctx, startup)
}

func (srv *exportService) bundle(ctx context.Context, startup *entity.Startup) (*entity.ExportBundle, error) {
	plan, err := loadPlan(ctx, srv.sections, startup.ID)
	if err != nil {
		return nil, err
	}

	tasks, err := srv.tasks.FindByStartupID(ctx, startup.ID, repository.TaskFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	artifacts, err := srv.artifacts.FindByStartupID(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artifacts")
	}

	return &entity.ExportBundle{
		Startup:       startup,
		Idea:          plan.Idea,
		Audience:      plan.Audience,
		BusinessModel: plan.BusinessModel,
		Competition:   plan.Competition,
		Revenue:       plan.Revenue,
		Mvp:           plan.Mvp,
		Tasks:         tasks,
		Artifacts:     artifacts,
		GeneratedAt:   srv.now().UTC(),
	}, nil
}

func (srv *exportService) Publish(ctx context.Context, userID, startupID int64) (*entity.ExportReceipt, error) {
	if srv.storage == nil {
		return nil, domainerrors.ErrExportNotConfigured
	}

	startup, err := srv.guard.authorize(ctx, userID, startupID)
	if err != nil {
		return nil, err
	}

	bundle, err := srv.bundle(ctx, startup)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
	}

	key := formatID(startup.ID) + "/" + util.Slugify(startup.Name) + "-" + bundle.GeneratedAt.Format("20060102T150405Z") + ".json"
	if err := srv.storage.Put(ctx, key, data, "application/json"); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to store export",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
	}

	receipt := &entity.ExportReceipt{
		Key:       key,
		Size:      int64(len(data)),
		Checksum:  util.ChecksumBytes(data),
		CreatedAt: bundle.GeneratedAt,
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Startup exported",
		slog.Int64("startup_id", startup.ID),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(receipt.Size)),
	)

	srv.events.publish(ctx, &service.DomainEvent{
		Type:       constants.EventStartupExported,
		UserID:     userID,
		StartupID:  startup.ID,
		Attributes: map[string]string{"key": key, "checksum": receipt.Checksum},
	})

	return receipt, nil
}

func (srv *exportService) ShareQR(ctx context.Context, userID, startupID int64) ([]byte, error) {
	if srv.shareBaseURL == "" {
		return nil, domainerrors.ErrExportNotConfigured
	}

	startup, err := srv.guard.authorize(ctx, userID, startupID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateShareQR(srv.shareURL(startup))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
	}

	return png, nil
}

// shareURL is <base>/<id>-<slug>.
func (srv *exportService) shareURL(startup *entity.Startup) string {
	return srv.shareBaseURL + "/" + formatID(startup.ID) + "-" + util.Slugify(startup.Name)
}
