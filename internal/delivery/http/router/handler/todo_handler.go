package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tasker/internal/delivery/http/middleware"
	"tasker/internal/delivery/http/response"
	"tasker/internal/domain/entity"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createTodoRequest is the payload for todo creation. State membership is
// validated up front; nothing is persisted for a bad value.
type createTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	State       string `json:"state" validate:"required,oneof=draft todo doing done"`
}

// listTodosRequest narrows a listing. Absent query parameters stay nil and
// are ignored by the filter.
type listTodosRequest struct {
	Title       *string `query:"title"`
	Description *string `query:"description"`
	State       *string `query:"state"`
	Offset      int     `query:"offset"`
	Limit       int     `query:"limit"`
}

// patchTodoRequest is a partial update; only fields present in the body
// change.
type patchTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	State       *string `json:"state" validate:"omitempty,oneof=draft todo doing done"`
}

// todoPublic is the externally visible shape of a todo.
type todoPublic struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type todoListPublic struct {
	Todos []todoPublic `json:"todos"`
}

func toTodoPublic(t *entity.Todo) todoPublic {
	return todoPublic{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		State:       t.State.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TodoHandler holds dependencies for todo-related handlers. All routes sit
// behind the auth middleware.
type TodoHandler struct {
	uc     usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{uc: uc, logger: logger}
}

// Create handles the todo creation request.
func (h *TodoHandler) Create(c echo.Context) error {
	var input createTodoRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Create(c.Request().Context(), middleware.CurrentUser(c), &usecase.CreateTodoInput{
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTodoPublic(todo), "Todo created successfully")
}

// List handles the filtered, paginated listing of the current user's todos.
func (h *TodoHandler) List(c echo.Context) error {
	var input listTodosRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	todos, err := h.uc.List(c.Request().Context(), middleware.CurrentUser(c), &usecase.ListTodosInput{
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
		Skip:        input.Offset,
		Limit:       input.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := todoListPublic{Todos: make([]todoPublic, 0, len(todos))}
	for _, t := range todos {
		out.Todos = append(out.Todos, toTodoPublic(t))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Patch handles the partial update of one todo.
func (h *TodoHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input patchTodoRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patch input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Patch(c.Request().Context(), id, middleware.CurrentUser(c), &usecase.PatchTodoInput{
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTodoPublic(todo), "Todo updated successfully")
}

// Delete handles the removal of one todo.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id, middleware.CurrentUser(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]string{"message": "Task has been deleted successfully."},
		"Task has been deleted successfully.")
}
