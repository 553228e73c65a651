package postgres

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var m model.TaskModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrTaskNotFound, "failed to find task")
	}

	return toTaskDomain(&m), nil
}

func (repo *taskRepository) FindByStartupID(ctx context.Context, startupID int64, filter repository.TaskFilter) ([]*entity.Task, error) {
	q := repo.db.WithContext(ctx).Where("startup_id = ?", startupID)
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []*model.TaskModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	out := make([]*entity.Task, 0, len(rows))
	for _, m := range rows {
		out = append(out, toTaskDomain(m))
	}
	return out, nil
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	m := fromTaskDomain(task)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create task")
	}

	*task = *toTaskDomain(m)
	return nil
}

func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	res := repo.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"title":        task.Title,
			"description":  task.Description,
			"status":       string(task.Status),
			"priority":     string(task.Priority),
			"category":     task.Category,
			"due_date":     task.DueDate,
			"completed_at": task.CompletedAt,
			"updated_at":   gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update task")
	}
	if res.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}
	return nil
}

func (repo *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := repo.db.WithContext(ctx).Delete(&model.TaskModel{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "failed to delete task")
	}
	return res.RowsAffected > 0, nil
}
