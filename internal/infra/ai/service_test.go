package ai

import (
	"context"
	"testing"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	out    string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt

	return f.out, f.err
}

func TestAnalyzeIdea_DecodesWrappedJSON(t *testing.T) {
	gen := &fakeGenerator{out: "Here you go:\n```json\n" +
		`{"score": 7, "summary": "Solid", "strengths": ["team"], "weaknesses": [], "suggestions": ["talk to users"], "marketPotential": "high"}` +
		"\n```"}
	svc := NewOllamaService(gen, discardLogger())

	got, err := svc.AnalyzeIdea(context.Background(), &entity.IdeaAnalysisRequest{
		ProblemStatement: "Slow invoicing",
		Solution:         "One-click invoices",
		Industry:         "Finance",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, got.Score)
	assert.Equal(t, []string{"team"}, got.Strengths)
	assert.Equal(t, []string{}, got.Weaknesses)
	assert.Equal(t, "high", got.MarketPotential)
	assert.Contains(t, gen.prompt, "Slow invoicing")
	assert.Contains(t, gen.prompt, "Industry: Finance")
	assert.NotContains(t, gen.prompt, "Target market:")
}

func TestAnalyzeIdea_SchemaViolation(t *testing.T) {
	gen := &fakeGenerator{out: `{"score": 42, "summary": "x", "strengths": [], "weaknesses": [], "suggestions": []}`}
	svc := NewOllamaService(gen, discardLogger())

	_, err := svc.AnalyzeIdea(context.Background(), &entity.IdeaAnalysisRequest{ProblemStatement: "p", Solution: "s"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAIBadResponse))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.NotEmpty(t, appErr.Details())
}

func TestAnalyzeIdea_NoJSON(t *testing.T) {
	svc := NewOllamaService(&fakeGenerator{out: "I cannot help with that"}, discardLogger())

	_, err := svc.AnalyzeIdea(context.Background(), &entity.IdeaAnalysisRequest{})
	assert.True(t, errors.Is(err, domainerrors.ErrAIBadResponse))
}

func TestAnalyzeIdea_TransportFailureIsUnavailable(t *testing.T) {
	svc := NewOllamaService(&fakeGenerator{err: ErrCircuitOpen}, discardLogger())

	_, err := svc.AnalyzeIdea(context.Background(), &entity.IdeaAnalysisRequest{})
	assert.True(t, errors.Is(err, domainerrors.ErrAIUnavailable))
}

func TestSuggestBusinessModel(t *testing.T) {
	gen := &fakeGenerator{out: `{"modelType": "subscription", "valuePropositions": ["save time"], "customerSegments": ["SMBs"], "revenueStreams": ["monthly plan"], "rationale": "recurring"}`}
	svc := NewOllamaService(gen, discardLogger())

	got, err := svc.SuggestBusinessModel(context.Background(), &entity.BusinessModelRequest{
		StartupName: "Acme",
		Industry:    "Technology",
	})
	require.NoError(t, err)

	assert.Equal(t, "subscription", got.ModelType)
	assert.Equal(t, []string{}, got.Channels)
	assert.Contains(t, gen.prompt, "Startup: Acme")
}

func TestGeneratePitchDeck_UsesPlanSections(t *testing.T) {
	gen := &fakeGenerator{out: `{"title": "Acme", "slides": [{"heading": "Problem", "bullets": ["invoices are slow"]}, {"heading": "Ask"}]}`}
	svc := NewOllamaService(gen, discardLogger())

	// second slide misses required bullets
	_, err := svc.GeneratePitchDeck(context.Background(), &entity.PitchDeckRequest{
		Startup: &entity.Startup{Name: "Acme"},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrAIBadResponse))

	gen.out = `{"title": "Acme", "slides": [{"heading": "Problem", "bullets": ["invoices are slow"], "notes": "open strong"}]}`
	deck, err := svc.GeneratePitchDeck(context.Background(), &entity.PitchDeckRequest{
		Startup:       &entity.Startup{Name: "Acme", Industry: "Finance"},
		Idea:          &entity.StartupIdea{ProblemStatement: "Slow invoicing", Solution: "Automation"},
		BusinessModel: &entity.BusinessModel{ModelType: "subscription", RevenueStreams: []string{"plans", "add-ons"}},
	})
	require.NoError(t, err)

	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "open strong", deck.Slides[0].Notes)
	assert.Contains(t, gen.prompt, "Startup: Acme (Finance)")
	assert.Contains(t, gen.prompt, "Problem: Slow invoicing")
	assert.Contains(t, gen.prompt, "Revenue streams: plans; add-ons")
	assert.NotContains(t, gen.prompt, "Audience:")
}

func TestGeneratePitchDeck_RequiresStartup(t *testing.T) {
	svc := NewOllamaService(&fakeGenerator{}, discardLogger())

	_, err := svc.GeneratePitchDeck(context.Background(), &entity.PitchDeckRequest{})
	assert.Error(t, err)
}

func TestUnavailableService(t *testing.T) {
	svc := NewUnavailableService()
	ctx := context.Background()

	_, err := svc.AnalyzeIdea(ctx, &entity.IdeaAnalysisRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrAIUnavailable)
	_, err = svc.SuggestBusinessModel(ctx, &entity.BusinessModelRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrAIUnavailable)
	_, err = svc.GeneratePitchDeck(ctx, &entity.PitchDeckRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrAIUnavailable)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("noise {\"a\":1} trailing"))
	assert.Equal(t, "", extractJSON("no braces"))
	assert.Equal(t, "", extractJSON("} backwards {"))
}
