package handler

import (
	"net/http"
	"time"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/domain/entity"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TaskHandler serves startup tasks.
type TaskHandler struct {
	uc usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

type listTasksQuery struct {
	Status string `query:"status" json:"status" validate:"omitempty,oneof=pending in-progress completed blocked"`
}

type createTaskRequest struct {
	Title       string     `json:"title" validate:"required,notblank,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in-progress completed blocked"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category    string     `json:"category" validate:"max=100"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in-progress completed blocked"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	DueDate     *time.Time `json:"dueDate"`
}

func (r *updateTaskRequest) toUpdate() entity.TaskUpdate {
	update := entity.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		DueDate:     r.DueDate,
	}
	if r.Status != nil {
		status := entity.TaskStatus(*r.Status)
		update.Status = &status
	}
	if r.Priority != nil {
		priority := entity.TaskPriority(*r.Priority)
		update.Priority = &priority
	}

	return update
}

// List handles GET /api/startups/:id/tasks[?status=].
func (h *TaskHandler) List(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query listTasksQuery
	if err := bind(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	tasks, err := h.uc.List(c.Request().Context(), userID, startupID, entity.TaskStatus(query.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tasks)
}

// Create handles POST /api/startups/:id/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	userID, startupID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req createTaskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.uc.Create(c.Request().Context(), userID, startupID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
		Priority:    entity.TaskPriority(req.Priority),
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, task)
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	userID, taskID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.uc.Get(c.Request().Context(), userID, taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// Update handles PATCH /api/tasks/:id.
func (h *TaskHandler) Update(c echo.Context) error {
	userID, taskID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req updateTaskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.uc.Update(c.Request().Context(), userID, taskID, req.toUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, taskID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, taskID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
