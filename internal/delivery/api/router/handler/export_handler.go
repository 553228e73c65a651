package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ExportHandler serves plan exports and share codes.
type ExportHandler struct {
	uc usecase.ExportUsecase
}

// NewExportHandler is the constructor for ExportHandler.
func NewExportHandler(uc usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Bundle handles GET /api/startups/:id/export.
func (h *ExportHandler) Bundle(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bundle, err := h.uc.Build(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle)
}

// Publish handles POST /api/startups/:id/export.
func (h *ExportHandler) Publish(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.uc.Publish(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

// ShareQR handles GET /api/startups/:id/export/qr.
func (h *ExportHandler) ShareQR(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.uc.ShareQR(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
