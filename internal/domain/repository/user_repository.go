// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserConflict is returned when a username or email is already taken.
var ErrUserConflict = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create assigns an id and persists a new user. Returns ErrUserConflict on a duplicate username or email.
	Create(ctx context.Context, user *entity.User) error

	// Update persists changed profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
