package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"launchpad/config"
	"launchpad/internal/delivery/api/middleware"
	"launchpad/internal/delivery/api/router"
	"launchpad/internal/delivery/api/router/handler"
	"launchpad/internal/domain/entity"
	"launchpad/internal/infra/ai"
	"launchpad/internal/infra/auth"
	"launchpad/internal/infra/persistence"
	"launchpad/internal/infra/persistence/memory"
	"launchpad/internal/infra/persistence/seed"
	"launchpad/internal/infra/pubsub"
	"launchpad/internal/infra/qrcode"
	"launchpad/internal/usecase/impl"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, AccessTokenTTL: 15 * time.Minute, RefreshTokenTTL: time.Hour},
		Export: &config.ExportConfig{ShareBaseURL: "https://launchpad.example/s"},
	}
	cfg.Env.ServiceName = "launchpad"
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Storage.Driver = "memory"
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := persistence.NewMemoryRepositories(memory.NewStore(seed.Resources()))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    t.Context(),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     repos.Users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Logger:       logger,
	})
	startupUC := impl.NewStartupService(impl.StartupServiceParams{
		Startups:  repos.Startups,
		Tasks:     repos.Tasks,
		Sections:  repos.Sections,
		Publisher: publisher,
		Logger:    logger,
	})
	planningUC := impl.NewPlanningUsecases(impl.PlanningParams{
		Startups:      repos.Startups,
		Tasks:         repos.Tasks,
		Sections:      repos.Sections,
		Notifications: repos.Notifications,
		Publisher:     publisher,
		Logger:        logger,
	})
	forumUC := impl.NewForumService(impl.ForumServiceParams{
		Forum:         repos.Forum,
		Users:         repos.Users,
		Notifications: repos.Notifications,
		Publisher:     publisher,
		Logger:        logger,
	})
	aiUC := impl.NewAIService(impl.AIServiceParams{
		Assistant: ai.NewUnavailableService(),
		Startups:  repos.Startups,
		Tasks:     repos.Tasks,
		Sections:  repos.Sections,
		Artifacts: repos.Artifacts,
		Logger:    logger,
	})
	exportUC := impl.NewExportService(impl.ExportServiceParams{
		Startups:  repos.Startups,
		Tasks:     repos.Tasks,
		Sections:  repos.Sections,
		Artifacts: repos.Artifacts,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Publisher: publisher,
		Config:    cfg,
		Logger:    logger,
	})

	params := router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(authUC),
		StartupHandler:      handler.NewStartupHandler(startupUC),
		PlanningHandler:     handler.NewPlanningHandler(planningUC),
		TaskHandler:         handler.NewTaskHandler(impl.NewTaskService(repos.Startups, repos.Tasks, logger)),
		ResourceHandler:     handler.NewResourceHandler(impl.NewResourceService(repos.Resources)),
		ForumHandler:        handler.NewForumHandler(forumUC),
		NotificationHandler: handler.NewNotificationHandler(impl.NewNotificationService(repos.Notifications)),
		ArtifactHandler:     handler.NewArtifactHandler(impl.NewArtifactService(repos.Startups, repos.Tasks, repos.Artifacts)),
		AIHandler:           handler.NewAIHandler(aiUC),
		ExportHandler:       handler.NewExportHandler(exportUC),
		HealthHandler:       handler.NewHealthHandler(cfg),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokens),
	}

	return &testServer{t: t, echo: NewEcho(cfg, logger, params)}
}

func (s *testServer) do(method, path, token string, body any) (int, *envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Body.Len() == 0 {
		return rec.Code, nil
	}

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, &env
}

// register signs up a user and returns its access token.
func (s *testServer) register(username string) string {
	s.t.Helper()

	code, env := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "StrongPass123!",
	})
	require.Equal(s.t, http.StatusCreated, code)

	var out struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &out))
	require.Equal(s.t, "Bearer", out.TokenType)

	return out.AccessToken
}

func (s *testServer) createStartup(token, name string) int64 {
	s.t.Helper()

	code, env := s.do(http.MethodPost, "/api/startups", token, map[string]string{
		"name":     name,
		"industry": "Technology",
	})
	require.Equal(s.t, http.StatusCreated, code)

	var startup entity.Startup
	require.NoError(s.t, json.Unmarshal(env.Data, &startup))

	return startup.ID
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decode[T any](t *testing.T, env *envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestServer_HealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.Equal(t, map[string]string{"status": "ok", "service": "launchpad", "storage": "memory"}, decode[map[string]string](t, &env))
}

func TestServer_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/startups", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	code, env = s.do(http.MethodGet, "/api/startups", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)

	// Resources and forum reads stay public.
	code, _ = s.do(http.MethodGet, "/api/resources", "", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodGet, "/api/forum/posts", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestServer_SectionUpsertAndProgress(t *testing.T) {
	s := newTestServer(t)
	token := s.register("ada")
	startupID := s.createStartup(token, "Acme")
	base := "/api/startups/" + itoa(startupID)

	code, env := s.do(http.MethodGet, base+"/idea", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "SECTION_NOT_FOUND", env.Error.Code)

	code, env = s.do(http.MethodPost, base+"/idea", token, map[string]any{
		"title":            "Acme",
		"problemStatement": "Paperwork is slow",
	})
	require.Equal(t, http.StatusCreated, code)
	idea := decode[entity.StartupIdea](t, env)
	assert.Equal(t, startupID, idea.StartupID)
	assert.Equal(t, []string{}, idea.KeyFeatures)

	code, env = s.do(http.MethodPost, base+"/idea", token, map[string]any{"solution": "Automate it"})
	require.Equal(t, http.StatusOK, code)
	updated := decode[entity.StartupIdea](t, env)
	assert.Equal(t, idea.ID, updated.ID)
	assert.Equal(t, "Paperwork is slow", updated.ProblemStatement)
	assert.Equal(t, "Automate it", updated.Solution)

	code, env = s.do(http.MethodGet, base+"/progress", token, nil)
	require.Equal(t, http.StatusOK, code)
	want := entity.ProgressBreakdown{
		StartupID: startupID,
		Progress:  16,
		Completed: 1,
		Total:     6,
		Sections: map[entity.SectionKind]bool{
			entity.SectionIdea:          true,
			entity.SectionAudience:      false,
			entity.SectionBusinessModel: false,
			entity.SectionCompetition:   false,
			entity.SectionRevenue:       false,
			entity.SectionMVP:           false,
		},
	}
	if diff := cmp.Diff(want, decode[entity.ProgressBreakdown](t, env)); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestServer_ValidationDetails(t *testing.T) {
	s := newTestServer(t)
	token := s.register("ada")

	code, env := s.do(http.MethodPost, "/api/startups", token, map[string]string{"stage": "Unicorn"})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var fields []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	}
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
	require.Len(t, fields, 2)
	assert.ElementsMatch(t, []string{"name/required", "stage/oneof"}, []string{
		fields[0].Field + "/" + fields[0].Rule,
		fields[1].Field + "/" + fields[1].Rule,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/startups", bytes.NewBufferString("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestServer_OwnershipIsEnforced(t *testing.T) {
	s := newTestServer(t)
	owner := s.register("ada")
	other := s.register("bob")
	startupID := s.createStartup(owner, "Acme")
	base := "/api/startups/" + itoa(startupID)

	for _, path := range []string{base, base + "/progress", base + "/idea", base + "/tasks", base + "/artifacts", base + "/export"} {
		code, env := s.do(http.MethodGet, path, other, nil)
		assert.Equal(t, http.StatusForbidden, code, path)
		assert.Equal(t, "STARTUP_FORBIDDEN", env.Error.Code, path)
	}

	code, env := s.do(http.MethodGet, "/api/startups", other, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]entity.Startup](t, env))
}

func TestServer_TaskLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.register("ada")
	startupID := s.createStartup(token, "Acme")

	code, env := s.do(http.MethodPost, "/api/startups/"+itoa(startupID)+"/tasks", token, map[string]string{"title": "   "})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), `"rule":"notblank"`)

	code, env = s.do(http.MethodPost, "/api/startups/"+itoa(startupID)+"/tasks", token, map[string]string{"title": "Interview ten users"})
	require.Equal(t, http.StatusCreated, code)
	task := decode[entity.Task](t, env)
	assert.Equal(t, entity.TaskPending, task.Status)

	code, env = s.do(http.MethodPatch, "/api/tasks/"+itoa(task.ID), token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, decode[entity.Task](t, env).CompletedAt)

	code, env = s.do(http.MethodGet, "/api/startups/"+itoa(startupID)+"/tasks?status=pending", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]entity.Task](t, env))

	code, _ = s.do(http.MethodDelete, "/api/tasks/"+itoa(task.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, env = s.do(http.MethodDelete, "/api/tasks/"+itoa(task.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "TASK_NOT_FOUND", env.Error.Code)
}

func TestServer_CommentNotifiesAuthor(t *testing.T) {
	s := newTestServer(t)
	author := s.register("ada")
	commenter := s.register("bob")

	code, env := s.do(http.MethodPost, "/api/forum/posts", author, map[string]any{
		"title":   "Pricing help",
		"content": "How do you price a B2B tool?",
	})
	require.Equal(t, http.StatusCreated, code)
	post := decode[entity.ForumPost](t, env)

	code, _ = s.do(http.MethodPost, "/api/forum/posts/"+itoa(post.ID)+"/comments", commenter, map[string]string{"content": "Try tiers"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = s.do(http.MethodPatch, "/api/forum/posts/"+itoa(post.ID), commenter, map[string]string{"title": "Mine now"})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(http.MethodGet, "/api/notifications/unread-count", author, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]int{"count": 1}, decode[map[string]int](t, env))

	code, env = s.do(http.MethodPut, "/api/notifications/read-all", author, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]int{"updated": 1}, decode[map[string]int](t, env))

	code, env = s.do(http.MethodGet, "/api/notifications/unread-count", commenter, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]int{"count": 0}, decode[map[string]int](t, env))
}

func TestServer_OptionalFeaturesReportUnavailable(t *testing.T) {
	s := newTestServer(t)
	token := s.register("ada")
	startupID := s.createStartup(token, "Acme")

	code, env := s.do(http.MethodPost, "/api/ai/analyze-idea", token, map[string]string{"problemStatement": "Paperwork is slow"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "AI_UNAVAILABLE", env.Error.Code)

	code, env = s.do(http.MethodPost, "/api/ai/pitch-deck", token, map[string]any{"startupId": startupID})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "AI_UNAVAILABLE", env.Error.Code)

	code, env = s.do(http.MethodPost, "/api/startups/"+itoa(startupID)+"/export", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "EXPORT_NOT_CONFIGURED", env.Error.Code)

	code, _ = s.do(http.MethodGet, "/api/startups/"+itoa(startupID)+"/export", token, nil)
	assert.Equal(t, http.StatusOK, code)

	req := httptest.NewRequest(http.MethodGet, "/api/startups/"+itoa(startupID)+"/export/qr", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
