// Package persistence selects the repository backend from configuration.
package persistence

import (
	"log/slog"

	"launchpad/config"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/repository"
	"launchpad/internal/errors"
	"launchpad/internal/infra/persistence/memory"
	"launchpad/internal/infra/persistence/postgres"
	"launchpad/internal/infra/persistence/seed"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes every repository to the fx graph.
type Repositories struct {
	fx.Out

	Users         repository.UserRepository
	Startups      repository.StartupRepository
	Sections      repository.SectionRepositories
	Tasks         repository.TaskRepository
	Resources     repository.ResourceRepository
	Forum         repository.ForumRepository
	Notifications repository.NotificationRepository
	Artifacts     repository.ArtifactRepository
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver

	switch driver {
	case "", constants.StorageMemory:
		params.Logger.Info("Using in-memory storage; data is lost on restart")

		return NewMemoryRepositories(memory.NewStore(seed.Resources())), nil

	case constants.StoragePostgres:
		db, err := postgres.New(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:         postgres.NewUserRepository(db),
			Startups:      postgres.NewStartupRepository(db),
			Sections:      postgres.NewSectionRepositories(db),
			Tasks:         postgres.NewTaskRepository(db),
			Resources:     postgres.NewResourceRepository(db),
			Forum:         postgres.NewForumRepository(db),
			Notifications: postgres.NewNotificationRepository(db),
			Artifacts:     postgres.NewArtifactRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", driver)
	}
}

// NewMemoryRepositories wires every repository to one in-memory store.
func NewMemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Users:         memory.NewUserRepository(store),
		Startups:      memory.NewStartupRepository(store),
		Sections:      memory.NewSectionRepositories(store),
		Tasks:         memory.NewTaskRepository(store),
		Resources:     memory.NewResourceRepository(store),
		Forum:         memory.NewForumRepository(store),
		Notifications: memory.NewNotificationRepository(store),
		Artifacts:     memory.NewArtifactRepository(store),
	}
}
