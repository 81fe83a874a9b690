package impl

import (
	"context"
	"log/slog"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// todoService implements the TodoUsecase interface. All operations act on
// the authenticated owner's todos only.
type todoService struct {
	todoRepo repository.TodoRepository
	logger   *slog.Logger
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo repository.TodoRepository
	Logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo: params.TodoRepo,
		logger:   params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the state eagerly and persists a new todo for the owner.
func (srv *todoService) Create(ctx context.Context, owner *entity.User, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	state, err := entity.ParseTodoState(input.State)
	if err != nil {
		return nil, err
	}

	todo := &entity.Todo{
		Title:       input.Title,
		Description: input.Description,
		State:       state,
		UserID:      owner.ID,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Debug("Todo created", slog.Int64("todoID", todo.ID), slog.Int64("userID", owner.ID))

	return todo, nil
}

// List returns the owner's todos narrowed by the optional filters, which
// combine with AND semantics.
func (srv *todoService) List(ctx context.Context, owner *entity.User, input *usecase.ListTodosInput) ([]*entity.Todo, error) {
	filter := repository.TodoFilter{
		Title:       input.Title,
		Description: input.Description,
	}
	if input.State != nil {
		state, err := entity.ParseTodoState(*input.State)
		if err != nil {
			return nil, err
		}
		filter.State = &state
	}

	skip, limit := normalizePage(input.Skip, input.Limit)

	todos, err := srv.todoRepo.ListByOwner(ctx, owner.ID, filter, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// Patch applies a partial update; only fields present in the input change.
// A todo that does not exist for this owner reads as not found, regardless
// of whether it exists for someone else.
func (srv *todoService) Patch(ctx context.Context, id int64, owner *entity.User, input *usecase.PatchTodoInput) (*entity.Todo, error) {
	todo, err := srv.todoRepo.FindByOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("patch todo")
		}

		return nil, errors.Wrap(err, "failed to load todo for patch")
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.State != nil {
		state, err := entity.ParseTodoState(*input.State)
		if err != nil {
			return nil, err
		}
		todo.State = state
	}

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to update todo")
	}

	return todo, nil
}

// Delete removes one of the owner's todos, with the same ownership-blind
// not-found policy as Patch.
func (srv *todoService) Delete(ctx context.Context, id int64, owner *entity.User) error {
	if err := srv.todoRepo.DeleteByOwner(ctx, id, owner.ID); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("delete todo")
		}

		return errors.Wrap(err, "failed to delete todo")
	}

	srv.log(ctx).Debug("Todo deleted", slog.Int64("todoID", id), slog.Int64("userID", owner.ID))

	return nil
}
