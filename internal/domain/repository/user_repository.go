// Package repository defines the persistence interfaces the domain depends
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"tasker/internal/domain/entity"
	"tasker/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists User entities.
//
// Create and Update report uniqueness violations on username or email as
// domain errors; callers must not pre-check, the store constraint is the
// single source of truth.
type UserRepository interface {
	// Create inserts the user and fills in the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user, or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves the user whose email matches exactly, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users in ID order, skipping skip rows and returning at
	// most limit.
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)

	// Update saves the mutated user and refreshes UpdatedAt.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row, or ErrUserNotFound. Removing the
	// user's todos is the caller's job, inside the same transaction.
	Delete(ctx context.Context, id int64) error
}
