package usecase

import (
	"context"
	"time"

	"launchpad/internal/domain/entity"
)

// CreateTaskInput defines a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      entity.TaskStatus   // defaults to pending
	Priority    entity.TaskPriority // defaults to medium
	Category    string
	DueDate     *time.Time
}

// TaskUsecase manages tasks. Ownership is always resolved through the task's startup.
type TaskUsecase interface {
	List(ctx context.Context, userID, startupID int64, status entity.TaskStatus) ([]*entity.Task, error)
	Create(ctx context.Context, userID, startupID int64, input *CreateTaskInput) (*entity.Task, error)
	Get(ctx context.Context, userID, taskID int64) (*entity.Task, error)
	Update(ctx context.Context, userID, taskID int64, update entity.TaskUpdate) (*entity.Task, error)
	Delete(ctx context.Context, userID, taskID int64) error
}
