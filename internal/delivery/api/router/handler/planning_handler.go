package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/domain/entity"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// sectionHandler serves GET and POST for one planning section type.
type sectionHandler[T any] struct {
	uc usecase.SectionUsecase[T]
}

// Get returns the section, 404 until the first save.
func (h *sectionHandler[T]) Get(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	row, err := h.uc.Get(c.Request().Context(), userID, startupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row)
}

// Save upserts the section: 201 on first save, 200 afterwards.
func (h *sectionHandler[T]) Save(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := new(T)
	if err := bind(c, input); err != nil {
		return response.HandleAppError(c, err)
	}

	row, created, err := h.uc.Save(c.Request().Context(), userID, startupID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, created, row)
}

// PlanningHandler serves the six wizard sections under /api/startups/:id.
type PlanningHandler struct {
	idea          *sectionHandler[entity.StartupIdea]
	audience      *sectionHandler[entity.TargetAudience]
	businessModel *sectionHandler[entity.BusinessModel]
	competition   *sectionHandler[entity.Competitor]
	revenue       *sectionHandler[entity.RevenueModel]
	mvp           *sectionHandler[entity.Mvp]
}

// NewPlanningHandler is the constructor for PlanningHandler.
func NewPlanningHandler(uc usecase.PlanningUsecases) *PlanningHandler {
	return &PlanningHandler{
		idea:          &sectionHandler[entity.StartupIdea]{uc: uc.Idea},
		audience:      &sectionHandler[entity.TargetAudience]{uc: uc.Audience},
		businessModel: &sectionHandler[entity.BusinessModel]{uc: uc.BusinessModel},
		competition:   &sectionHandler[entity.Competitor]{uc: uc.Competition},
		revenue:       &sectionHandler[entity.RevenueModel]{uc: uc.Revenue},
		mvp:           &sectionHandler[entity.Mvp]{uc: uc.Mvp},
	}
}

// Register mounts GET and POST /<section> for every section kind on g.
func (h *PlanningHandler) Register(g *echo.Group) {
	routes := map[entity.SectionKind][2]echo.HandlerFunc{
		entity.SectionIdea:          {h.idea.Get, h.idea.Save},
		entity.SectionAudience:      {h.audience.Get, h.audience.Save},
		entity.SectionBusinessModel: {h.businessModel.Get, h.businessModel.Save},
		entity.SectionCompetition:   {h.competition.Get, h.competition.Save},
		entity.SectionRevenue:       {h.revenue.Get, h.revenue.Save},
		entity.SectionMVP:           {h.mvp.Get, h.mvp.Save},
	}
	for kind, handlers := range routes {
		g.GET("/"+string(kind), handlers[0])
		g.POST("/"+string(kind), handlers[1])
	}
}
