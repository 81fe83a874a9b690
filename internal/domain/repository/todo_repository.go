package repository

import (
	"context"

	"tasker/internal/domain/entity"
	"tasker/internal/errors"
)

// ErrTodoNotFound is returned when no todo matches the id for the given
// owner. A todo belonging to a different owner yields the same error.
var ErrTodoNotFound = errors.New("todo not found")

// TodoFilter narrows a listing. Nil fields are ignored; set fields combine
// with AND semantics. Title and Description match as case-sensitive
// substrings, State matches exactly.
type TodoFilter struct {
	Title       *string
	Description *string
	State       *entity.TodoState
}

// TodoRepository persists Todo entities. Every operation that addresses a
// single todo is scoped by owner so rows are never reachable across
// accounts.
type TodoRepository interface {
	// Create inserts the todo and fills in the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByOwner retrieves the todo with the given id belonging to
	// ownerID, or ErrTodoNotFound.
	FindByOwner(ctx context.Context, id, ownerID int64) (*entity.Todo, error)

	// ListByOwner returns the owner's todos in ID order, narrowed by
	// filter, skipping skip rows and returning at most limit.
	ListByOwner(ctx context.Context, ownerID int64, filter TodoFilter, skip, limit int) ([]*entity.Todo, error)

	// Update saves the mutated todo and refreshes UpdatedAt.
	Update(ctx context.Context, todo *entity.Todo) error

	// DeleteByOwner removes the todo with the given id belonging to
	// ownerID, or ErrTodoNotFound.
	DeleteByOwner(ctx context.Context, id, ownerID int64) error

	// DeleteAllByOwner removes every todo of the owner. Used by the user
	// deletion cascade.
	DeleteAllByOwner(ctx context.Context, ownerID int64) error
}
