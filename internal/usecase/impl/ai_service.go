package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// aiService implements the AIUsecase interface.
type aiService struct {
	assistant service.AIService
	sections  repository.SectionRepositories
	artifacts repository.ArtifactRepository
	guard     *ownershipGuard
	logger    *slog.Logger
}

// AIServiceParams holds dependencies for AIService, injected by Fx.
type AIServiceParams struct {
	fx.In

	Assistant service.AIService
	Startups  repository.StartupRepository
	Tasks     repository.TaskRepository
	Sections  repository.SectionRepositories
	Artifacts repository.ArtifactRepository
	Logger    *slog.Logger
}

// NewAIService is the constructor for aiService.
func NewAIService(params AIServiceParams) usecase.AIUsecase {
	return &aiService{
		assistant: params.Assistant,
		sections:  params.Sections,
		artifacts: params.Artifacts,
		guard:     newOwnershipGuard(params.Startups, params.Tasks),
		logger:    params.Logger,
	}
}

func (srv *aiService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *aiService) AnalyzeIdea(ctx context.Context, userID int64, req *entity.IdeaAnalysisRequest) (*entity.IdeaAnalysis, error) {
	srv.log(ctx).Info("Analyzing idea", slog.Int64("userID", userID))

	return srv.assistant.AnalyzeIdea(ctx, req)
}

func (srv *aiService) SuggestBusinessModel(ctx context.Context, userID int64, req *entity.BusinessModelRequest) (*entity.BusinessModelSuggestion, error) {
	srv.log(ctx).Info("Suggesting business model", slog.Int64("userID", userID))

	return srv.assistant.SuggestBusinessModel(ctx, req)
}

func (srv *aiService) GeneratePitchDeck(ctx context.Context, userID, startupID int64, save bool) (*usecase.PitchDeckOutput, error) {
	startup, err := srv.guard.authorize(ctx, userID, startupID)
	if err != nil {
		return nil, err
	}

	plan, err := loadPlan(ctx, srv.sections, startupID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Generating pitch deck",
		slog.Int64("startup_id", startupID),
		slog.Int("sections", plan.completed()),
	)

	deck, err := srv.assistant.GeneratePitchDeck(ctx, &entity.PitchDeckRequest{
		Startup:       startup,
		Idea:          plan.Idea,
		Audience:      plan.Audience,
		BusinessModel: plan.BusinessModel,
		Competition:   plan.Competition,
		Revenue:       plan.Revenue,
		Mvp:           plan.Mvp,
	})
	if err != nil {
		return nil, err
	}

	out := &usecase.PitchDeckOutput{Deck: deck}
	if !save {
		return out, nil
	}

	out.Artifact, _, err = srv.artifacts.UpsertByKind(ctx, startupID, entity.ArtifactPitchDeck, func(a *entity.Artifact) error {
		a.Title = deck.Title
		a.Items = deckItems(deck)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save pitch deck")
	}

	return out, nil
}

// deckItems turns slides into artifact items, one bullet per line.
func deckItems(deck *entity.PitchDeck) []entity.ArtifactItem {
	items := make([]entity.ArtifactItem, 0, len(deck.Slides))
	for _, slide := range deck.Slides {
		detail := strings.Join(slide.Bullets, "\n")
		if slide.Notes != "" {
			detail = strings.TrimSpace(detail + "\n\n" + slide.Notes)
		}
		items = append(items, entity.ArtifactItem{Label: slide.Heading, Detail: detail})
	}

	return items
}
