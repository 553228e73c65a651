package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrTaskNotFound is returned when a task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter narrows a task listing. Zero values match everything.
type TaskFilter struct {
	Status entity.TaskStatus
}

// TaskRepository persists tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// FindByStartupID lists the startup's tasks, oldest first.
	FindByStartupID(ctx context.Context, startupID int64, filter TaskFilter) ([]*entity.Task, error)

	Create(ctx context.Context, task *entity.Task) error

	// Update stores every field of an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete reports whether a task was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
