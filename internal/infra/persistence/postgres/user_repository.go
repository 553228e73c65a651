// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var m model.UserModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to find user by id")
	}

	return toUserDomain(&m), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	if err := repo.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&m).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to find user by email")
	}

	return toUserDomain(&m), nil
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var m model.UserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to find user by username")
	}

	return toUserDomain(&m), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserConflict
		}
		return errors.Wrap(err, "failed to create user")
	}

	*user = *toUserDomain(m)
	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	res := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"full_name":      user.FullName,
			"bio":            user.Bio,
			"location":       user.Location,
			"website":        user.Website,
			"avatar_url":     user.AvatarURL,
			"google_subject": user.GoogleSubject,
			"password_hash":  user.PasswordHash,
			"updated_at":     gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update user")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
