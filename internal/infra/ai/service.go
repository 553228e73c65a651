package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"text/template"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/qri-io/jsonschema"
)

// generator is the part of Client the service depends on.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ollamaService struct {
	client generator
	logger *slog.Logger
}

// NewOllamaService builds the assistant on top of an Ollama client.
func NewOllamaService(client generator, logger *slog.Logger) service.AIService {
	return &ollamaService{client: client, logger: logger}
}

func (s *ollamaService) AnalyzeIdea(ctx context.Context, req *entity.IdeaAnalysisRequest) (*entity.IdeaAnalysis, error) {
	out, err := ask[entity.IdeaAnalysis](ctx, s, ideaAnalysisPrompt, ideaAnalysisResponse, req)
	if err != nil {
		return nil, err
	}

	out.Strengths = nonNil(out.Strengths)
	out.Weaknesses = nonNil(out.Weaknesses)
	out.Suggestions = nonNil(out.Suggestions)

	return out, nil
}

func (s *ollamaService) SuggestBusinessModel(ctx context.Context, req *entity.BusinessModelRequest) (*entity.BusinessModelSuggestion, error) {
	out, err := ask[entity.BusinessModelSuggestion](ctx, s, businessModelPrompt, businessModelResponse, req)
	if err != nil {
		return nil, err
	}

	out.ValuePropositions = nonNil(out.ValuePropositions)
	out.CustomerSegments = nonNil(out.CustomerSegments)
	out.Channels = nonNil(out.Channels)
	out.RevenueStreams = nonNil(out.RevenueStreams)
	out.KeyActivities = nonNil(out.KeyActivities)
	out.CostStructure = nonNil(out.CostStructure)

	return out, nil
}

func (s *ollamaService) GeneratePitchDeck(ctx context.Context, req *entity.PitchDeckRequest) (*entity.PitchDeck, error) {
	if req.Startup == nil {
		return nil, errors.New("pitch deck request without startup")
	}

	out, err := ask[entity.PitchDeck](ctx, s, pitchDeckPrompt, pitchDeckResponse, req)
	if err != nil {
		return nil, err
	}

	for i := range out.Slides {
		out.Slides[i].Bullets = nonNil(out.Slides[i].Bullets)
	}

	return out, nil
}

// ask renders the prompt, calls the model and decodes its JSON answer after
// validating it against schema.
func ask[T any](ctx context.Context, s *ollamaService, tpl *template.Template, schema *jsonschema.Schema, data any) (*T, error) {
	prompt, err := renderPrompt(tpl, data)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "AI request failed",
			slog.String("prompt", tpl.Name()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrAIUnavailable, err.Error())
	}

	body := extractJSON(raw)
	if body == "" {
		s.logger.WarnContext(ctx, "AI response without JSON object",
			slog.String("prompt", tpl.Name()),
			slog.String("raw", raw),
		)

		return nil, domainerrors.ErrAIBadResponse
	}

	keyErrs, err := schema.ValidateBytes(ctx, []byte(body))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAIBadResponse, err.Error())
	}
	if len(keyErrs) > 0 {
		problems := make([]string, 0, len(keyErrs))
		for _, ke := range keyErrs {
			problems = append(problems, ke.PropertyPath+": "+ke.Message)
		}
		s.logger.WarnContext(ctx, "AI response does not match schema",
			slog.String("prompt", tpl.Name()),
			slog.Any("problems", problems),
		)

		return nil, domainerrors.ErrAIBadResponse.WithDetails(problems)
	}

	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, errors.Wrap(domainerrors.ErrAIBadResponse, err.Error())
	}

	return &out, nil
}

// extractJSON returns the substring from the first '{' to the last '}',
// which tolerates models wrapping the object in prose or markdown fences.
func extractJSON(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return ""
	}

	return s[first : last+1]
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}

	return items
}

// unavailableService answers every call with ErrAIUnavailable.
type unavailableService struct{}

// NewUnavailableService is used when the assistant is disabled.
func NewUnavailableService() service.AIService {
	return unavailableService{}
}

func (unavailableService) AnalyzeIdea(context.Context, *entity.IdeaAnalysisRequest) (*entity.IdeaAnalysis, error) {
	return nil, domainerrors.ErrAIUnavailable
}

func (unavailableService) SuggestBusinessModel(context.Context, *entity.BusinessModelRequest) (*entity.BusinessModelSuggestion, error) {
	return nil, domainerrors.ErrAIUnavailable
}

func (unavailableService) GeneratePitchDeck(context.Context, *entity.PitchDeckRequest) (*entity.PitchDeck, error) {
	return nil, domainerrors.ErrAIUnavailable
}
