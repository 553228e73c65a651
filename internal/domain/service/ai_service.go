package service

import (
	"context"

	"launchpad/internal/domain/entity"
)

// AIService is the language-model collaborator behind the wizard's assistant.
type AIService interface {
	AnalyzeIdea(ctx context.Context, req *entity.IdeaAnalysisRequest) (*entity.IdeaAnalysis, error)
	SuggestBusinessModel(ctx context.Context, req *entity.BusinessModelRequest) (*entity.BusinessModelSuggestion, error)
	GeneratePitchDeck(ctx context.Context, req *entity.PitchDeckRequest) (*entity.PitchDeck, error)
}
