package impl

import (
	"context"
	"testing"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssistant answers with canned results and records the last deck request.
type fakeAssistant struct {
	deckReq *entity.PitchDeckRequest
	err     error
}

func (a *fakeAssistant) AnalyzeIdea(_ context.Context, _ *entity.IdeaAnalysisRequest) (*entity.IdeaAnalysis, error) {
	if a.err != nil {
		return nil, a.err
	}

	return &entity.IdeaAnalysis{Score: 7, Summary: "Promising"}, nil
}

func (a *fakeAssistant) SuggestBusinessModel(_ context.Context, _ *entity.BusinessModelRequest) (*entity.BusinessModelSuggestion, error) {
	return &entity.BusinessModelSuggestion{ModelType: "subscription"}, nil
}

func (a *fakeAssistant) GeneratePitchDeck(_ context.Context, req *entity.PitchDeckRequest) (*entity.PitchDeck, error) {
	a.deckReq = req

	return &entity.PitchDeck{
		Title: req.Startup.Name + " deck",
		Slides: []entity.PitchSlide{
			{Heading: "Problem", Bullets: []string{"Slow", "Costly"}},
			{Heading: "Ask", Bullets: []string{"$1M"}, Notes: "Seed round"},
		},
	}, nil
}

func newTestAIUsecase(f *fixture, assistant *fakeAssistant) *aiService {
	return NewAIService(AIServiceParams{
		Assistant: assistant,
		Startups:  f.repos.Startups,
		Tasks:     f.repos.Tasks,
		Sections:  f.repos.Sections,
		Artifacts: f.repos.Artifacts,
		Logger:    newDiscardLogger(),
	}).(*aiService)
}

func TestAIService_GeneratePitchDeckSaves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)
	_, _, err := f.planning.Idea.Save(ctx, owner.ID, startup.ID, &entity.StartupIdea{Title: "Faster invoices"})
	require.NoError(t, err)

	assistant := &fakeAssistant{}
	svc := newTestAIUsecase(f, assistant)

	preview, err := svc.GeneratePitchDeck(ctx, owner.ID, startup.ID, false)
	require.NoError(t, err)
	assert.Nil(t, preview.Artifact)
	require.NotNil(t, assistant.deckReq.Idea)
	assert.Equal(t, "Faster invoices", assistant.deckReq.Idea.Title)
	assert.Nil(t, assistant.deckReq.Mvp)

	saved, err := svc.GeneratePitchDeck(ctx, owner.ID, startup.ID, true)
	require.NoError(t, err)
	require.NotNil(t, saved.Artifact)
	assert.Equal(t, entity.ArtifactPitchDeck, saved.Artifact.Kind)
	assert.Equal(t, "Acme deck", saved.Artifact.Title)
	require.Len(t, saved.Artifact.Items, 2)
	assert.Equal(t, "Slow\nCostly", saved.Artifact.Items[0].Detail)
	assert.Equal(t, "$1M\n\nSeed round", saved.Artifact.Items[1].Detail)
}

func TestAIService_PitchDeckOwnership(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, "ada")
	other := f.createUser(t, "bob")
	startup := f.createStartup(t, owner.ID)

	assistant := &fakeAssistant{}
	_, err := newTestAIUsecase(f, assistant).GeneratePitchDeck(context.Background(), other.ID, startup.ID, true)
	assert.True(t, errors.Is(err, domainerrors.ErrStartupForbidden))
	assert.Nil(t, assistant.deckReq, "the assistant is not called for foreign startups")
}

func TestAIService_AnalyzeIdeaPassesErrors(t *testing.T) {
	f := newFixture(t)
	svc := newTestAIUsecase(f, &fakeAssistant{err: domainerrors.ErrAIUnavailable})

	_, err := svc.AnalyzeIdea(context.Background(), 1, &entity.IdeaAnalysisRequest{ProblemStatement: "p"})
	assert.True(t, errors.Is(err, domainerrors.ErrAIUnavailable))
}
