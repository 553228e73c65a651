package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/service"
	"launchpad/internal/infra/persistence"
	"launchpad/internal/infra/persistence/memory"
	"launchpad/internal/infra/persistence/seed"
	"launchpad/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) ofType(eventType string) []*service.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*service.DomainEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}

	return out
}

// mockPush is a testify mock of the push notification service.
type mockPush struct {
	mock.Mock
}

func (m *mockPush) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	args := m.Called(ctx, topic, title, body, data)

	return args.Error(0)
}

// fixture wires every use case to one in-memory store.
type fixture struct {
	repos     persistence.Repositories
	publisher *recordingPublisher
	push      *mockPush

	startups      usecase.StartupUsecase
	planning      usecase.PlanningUsecases
	tasks         usecase.TaskUsecase
	forum         usecase.ForumUsecase
	notifications usecase.NotificationUsecase
	artifacts     usecase.ArtifactUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repos := persistence.NewMemoryRepositories(memory.NewStore(seed.Resources()))
	publisher := &recordingPublisher{}
	push := &mockPush{}
	t.Cleanup(func() { push.AssertExpectations(t) })
	logger := newDiscardLogger()

	return &fixture{
		repos:     repos,
		publisher: publisher,
		push:      push,
		startups: NewStartupService(StartupServiceParams{
			Startups:  repos.Startups,
			Tasks:     repos.Tasks,
			Sections:  repos.Sections,
			Publisher: publisher,
			Logger:    logger,
		}),
		planning: NewPlanningUsecases(PlanningParams{
			Startups:      repos.Startups,
			Tasks:         repos.Tasks,
			Sections:      repos.Sections,
			Notifications: repos.Notifications,
			Publisher:     publisher,
			Push:          push,
			Logger:        logger,
		}),
		tasks: NewTaskService(repos.Startups, repos.Tasks, logger),
		forum: NewForumService(ForumServiceParams{
			Forum:         repos.Forum,
			Users:         repos.Users,
			Notifications: repos.Notifications,
			Publisher:     publisher,
			Push:          push,
			Logger:        logger,
		}),
		notifications: NewNotificationService(repos.Notifications),
		artifacts:     NewArtifactService(repos.Startups, repos.Tasks, repos.Artifacts),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, f.repos.Users.Create(context.Background(), user))

	return user
}

func (f *fixture) createStartup(t *testing.T, userID int64) *entity.Startup {
	t.Helper()

	startup, err := f.startups.Create(context.Background(), userID, &usecase.CreateStartupInput{
		Name:     "Acme",
		Industry: "Technology",
		Stage:    entity.StageIdea,
	})
	require.NoError(t, err)

	return startup
}

func (f *fixture) progressOf(t *testing.T, startupID int64) int {
	t.Helper()

	startup, err := f.repos.Startups.FindByID(context.Background(), startupID)
	require.NoError(t, err)

	return startup.Progress
}
