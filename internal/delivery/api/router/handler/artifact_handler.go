package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/domain/entity"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ArtifactHandler serves the extended planning artifacts of a startup.
type ArtifactHandler struct {
	uc usecase.ArtifactUsecase
}

// NewArtifactHandler is the constructor for ArtifactHandler.
func NewArtifactHandler(uc usecase.ArtifactUsecase) *ArtifactHandler {
	return &ArtifactHandler{uc: uc}
}

type artifactRequest struct {
	Title   string                `json:"title" validate:"max=200"`
	Summary string                `json:"summary" validate:"max=5000"`
	Items   []entity.ArtifactItem `json:"items" validate:"max=100,dive"`
}

// List handles GET /api/startups/:id/artifacts.
func (h *ArtifactHandler) List(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows, err := h.uc.List(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// Get handles GET /api/startups/:id/artifacts/:kind.
func (h *ArtifactHandler) Get(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	row, err := h.uc.Get(c.Request().Context(), userID, startupID, entity.ArtifactKind(c.Param("kind")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row)
}

// Save handles POST /api/startups/:id/artifacts/:kind.
func (h *ArtifactHandler) Save(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req artifactRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	row, created, err := h.uc.Save(c.Request().Context(), userID, startupID, entity.ArtifactKind(c.Param("kind")), &usecase.ArtifactInput{
		Title:   req.Title,
		Summary: req.Summary,
		Items:   req.Items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, created, row)
}
