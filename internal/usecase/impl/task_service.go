package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	tasks  repository.TaskRepository
	guard  *ownershipGuard
	now    func() time.Time
	logger *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	startups repository.StartupRepository,
	tasks repository.TaskRepository,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		tasks:  tasks,
		guard:  newOwnershipGuard(startups, tasks),
		now:    time.Now,
		logger: logger,
	}
}

func (srv *taskService) List(ctx context.Context, userID, startupID int64, status entity.TaskStatus) ([]*entity.Task, error) {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, err
	}

	tasks, err := srv.tasks.FindByStartupID(ctx, startupID, repository.TaskFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

func (srv *taskService) Create(ctx context.Context, userID, startupID int64, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if _, err := srv.guard.authorize(ctx, userID, startupID); err != nil {
		return nil, err
	}

	task := &entity.Task{
		StartupID:   startupID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Category:    input.Category,
		DueDate:     input.DueDate,
	}
	if task.Status == "" {
		task.Status = entity.TaskPending
	}
	if task.Priority == "" {
		task.Priority = entity.PriorityMedium
	}
	if task.Status == entity.TaskCompleted {
		completedAt := srv.now()
		task.CompletedAt = &completedAt
	}

	if err := srv.tasks.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("startup_id", startupID),
	)

	return task, nil
}

func (srv *taskService) Get(ctx context.Context, userID, taskID int64) (*entity.Task, error) {
	return srv.guard.authorizeTask(ctx, userID, taskID)
}

func (srv *taskService) Update(ctx context.Context, userID, taskID int64, update entity.TaskUpdate) (*entity.Task, error) {
	task, err := srv.guard.authorizeTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	update.Apply(task, srv.now())
	if err := srv.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

func (srv *taskService) Delete(ctx context.Context, userID, taskID int64) error {
	if _, err := srv.guard.authorizeTask(ctx, userID, taskID); err != nil {
		return err
	}

	removed, err := srv.tasks.Delete(ctx, taskID)
	if err != nil {
		return errors.Wrap(err, "failed to delete task")
	}
	if !removed {
		return domainerrors.ErrTaskNotFound
	}

	return nil
}
