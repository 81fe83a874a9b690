package usecase

import (
	"context"

	"tasker/internal/domain/entity"
)

// CreateTodoInput carries a new todo. State arrives as its wire string and
// is parsed eagerly before anything is persisted.
type CreateTodoInput struct {
	Title       string
	Description string
	State       string
}

// ListTodosInput narrows and pages a listing. Nil filter fields are ignored;
// set fields combine with AND.
type ListTodosInput struct {
	Title       *string
	Description *string
	State       *string
	Skip        int
	Limit       int
}

// PatchTodoInput is a partial update; only non-nil fields change.
type PatchTodoInput struct {
	Title       *string
	Description *string
	State       *string
}

// TodoUsecase covers todo management. Every operation is scoped to the
// owner; a todo belonging to someone else behaves exactly like a missing
// one.
type TodoUsecase interface {
	Create(ctx context.Context, owner *entity.User, input *CreateTodoInput) (*entity.Todo, error)
	List(ctx context.Context, owner *entity.User, input *ListTodosInput) ([]*entity.Todo, error)
	Patch(ctx context.Context, id int64, owner *entity.User, input *PatchTodoInput) (*entity.Todo, error)
	Delete(ctx context.Context, id int64, owner *entity.User) error
}
