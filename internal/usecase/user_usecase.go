// Package usecase declares the application's use-case interfaces and their
// input/output shapes. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"tasker/internal/domain/entity"
)

// Pagination defaults applied when a caller does not set them.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput replaces the mutable profile fields of an account.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

// UserUsecase covers account management. Mutations require the requester,
// resolved from the bearer token by the auth middleware; a user may only
// modify or delete themself.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, id int64, requester *entity.User, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id int64, requester *entity.User) error
}
