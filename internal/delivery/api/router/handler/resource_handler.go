package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ResourceHandler serves the public resource library.
type ResourceHandler struct {
	uc usecase.ResourceUsecase
}

// NewResourceHandler is the constructor for ResourceHandler.
func NewResourceHandler(uc usecase.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// List handles GET /api/resources.
func (h *ResourceHandler) List(c echo.Context) error {
	resources, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resources)
}

// ByCategory handles GET /api/resources/category/:category.
func (h *ResourceHandler) ByCategory(c echo.Context) error {
	resources, err := h.uc.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resources)
}

// ByIndustry handles GET /api/resources/industry/:industry.
func (h *ResourceHandler) ByIndustry(c echo.Context) error {
	resources, err := h.uc.ListByIndustry(c.Request().Context(), c.Param("industry"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resources)
}

// Get handles GET /api/resources/:id.
func (h *ResourceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resource, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resource)
}
