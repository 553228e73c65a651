package main

import (
	"context"
	"log/slog"
	"os"

	"launchpad/config"
	"launchpad/internal/delivery"
	"launchpad/internal/delivery/api"
	"launchpad/internal/delivery/api/middleware"
	"launchpad/internal/delivery/api/router/handler"
	"launchpad/internal/infra/ai"
	"launchpad/internal/infra/auth"
	"launchpad/internal/infra/auth/google"
	"launchpad/internal/infra/export"
	logs "launchpad/internal/infra/log"
	"launchpad/internal/infra/notification"
	"launchpad/internal/infra/persistence"
	"launchpad/internal/infra/pubsub"
	"launchpad/internal/infra/qrcode"
	"launchpad/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

// Google sign-in, Firebase push and export storage provide nil when unconfigured.
func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewIDTokenVerifier,
			notification.NewFirebaseService,
			pubsub.NewEventPublisher,
			ai.NewAIService,
			export.NewExportStorage,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStartupService,
			impl.NewPlanningUsecases,
			impl.NewTaskService,
			impl.NewResourceService,
			impl.NewForumService,
			impl.NewNotificationService,
			impl.NewArtifactService,
			impl.NewAIService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStartupHandler,
			handler.NewPlanningHandler,
			handler.NewTaskHandler,
			handler.NewResourceHandler,
			handler.NewForumHandler,
			handler.NewNotificationHandler,
			handler.NewArtifactHandler,
			handler.NewAIHandler,
			handler.NewExportHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
