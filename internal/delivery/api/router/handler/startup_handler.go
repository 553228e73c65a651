package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/domain/entity"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StartupHandler serves /api/startups.
type StartupHandler struct {
	uc usecase.StartupUsecase
}

// NewStartupHandler is the constructor for StartupHandler.
func NewStartupHandler(uc usecase.StartupUsecase) *StartupHandler {
	return &StartupHandler{uc: uc}
}

type createStartupRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Industry    string `json:"industry" validate:"max=100"`
	Stage       string `json:"stage" validate:"omitempty,oneof=Idea Validation MVP Launch Growth Scale"`
}

type updateStartupRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	Stage       *string `json:"stage" validate:"omitempty,oneof=Idea Validation MVP Launch Growth Scale"`
}

// List handles GET /api/startups.
func (h *StartupHandler) List(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	startups, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, startups)
}

// Create handles POST /api/startups.
func (h *StartupHandler) Create(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req createStartupRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	startup, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateStartupInput{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Stage:       req.Stage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, startup)
}

// Get handles GET /api/startups/:id.
func (h *StartupHandler) Get(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	startup, err := h.uc.Get(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, startup)
}

// Update handles PATCH /api/startups/:id.
func (h *StartupHandler) Update(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req updateStartupRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	startup, err := h.uc.Update(c.Request().Context(), userID, startupID, entity.StartupUpdate{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Stage:       req.Stage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, startup)
}

// Delete handles DELETE /api/startups/:id.
func (h *StartupHandler) Delete(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, startupID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Progress handles GET /api/startups/:id/progress.
func (h *StartupHandler) Progress(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	breakdown, err := h.uc.Progress(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, breakdown)
}
