package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// PitchDeckOutput is a drafted deck and, when saved, the pitch-deck artifact it was stored as.
type PitchDeckOutput struct {
	Deck     *entity.PitchDeck
	Artifact *entity.Artifact
}

// AIUsecase exposes the planning assistant.
type AIUsecase interface {
	AnalyzeIdea(ctx context.Context, userID int64, req *entity.IdeaAnalysisRequest) (*entity.IdeaAnalysis, error)
	SuggestBusinessModel(ctx context.Context, userID int64, req *entity.BusinessModelRequest) (*entity.BusinessModelSuggestion, error)
	// GeneratePitchDeck drafts a deck from the startup's saved sections and
	// optionally stores it as the pitch-deck artifact.
	GeneratePitchDeck(ctx context.Context, userID, startupID int64, save bool) (*PitchDeckOutput, error)
}
