package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/domain/entity"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AIHandler proxies the planning assistant.
type AIHandler struct {
	uc usecase.AIUsecase
}

// NewAIHandler is the constructor for AIHandler.
func NewAIHandler(uc usecase.AIUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

type analyzeIdeaRequest struct {
	ProblemStatement string `json:"problemStatement" validate:"required,notblank,max=5000"`
	Solution         string `json:"solution" validate:"max=5000"`
	TargetMarket     string `json:"targetMarket" validate:"max=2000"`
	Industry         string `json:"industry" validate:"max=100"`
}

type businessModelRequest struct {
	StartupName    string `json:"startupName" validate:"required,notblank,max=200"`
	Industry       string `json:"industry" validate:"max=100"`
	Description    string `json:"description" validate:"max=5000"`
	TargetAudience string `json:"targetAudience" validate:"max=2000"`
}

type pitchDeckRequest struct {
	StartupID int64 `json:"startupId" validate:"required,gt=0"`
	Save      bool  `json:"save"`
}

type pitchDeckResponse struct {
	Deck     *entity.PitchDeck `json:"deck"`
	Artifact *entity.Artifact  `json:"artifact,omitempty"`
}

// AnalyzeIdea handles POST /api/ai/analyze-idea.
func (h *AIHandler) AnalyzeIdea(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req analyzeIdeaRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	analysis, err := h.uc.AnalyzeIdea(c.Request().Context(), userID, &entity.IdeaAnalysisRequest{
		ProblemStatement: req.ProblemStatement,
		Solution:         req.Solution,
		TargetMarket:     req.TargetMarket,
		Industry:         req.Industry,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis)
}

// SuggestBusinessModel handles POST /api/ai/business-model.
func (h *AIHandler) SuggestBusinessModel(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req businessModelRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	suggestion, err := h.uc.SuggestBusinessModel(c.Request().Context(), userID, &entity.BusinessModelRequest{
		StartupName:    req.StartupName,
		Industry:       req.Industry,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestion)
}

// GeneratePitchDeck handles POST /api/ai/pitch-deck.
func (h *AIHandler) GeneratePitchDeck(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req pitchDeckRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.uc.GeneratePitchDeck(c.Request().Context(), userID, req.StartupID, req.Save)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &pitchDeckResponse{Deck: out.Deck, Artifact: out.Artifact})
}
