// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tasker/internal/delivery/http/middleware"
	"tasker/internal/delivery/http/response"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload for account creation and update. The
// password is write-only; it never appears in any response.
type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// pageRequest carries offset pagination query parameters.
type pageRequest struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

// userPublic is the externally visible shape of a user.
type userPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userListPublic struct {
	Users []userPublic `json:"users"`
}

func toUserPublic(u *entity.User) userPublic {
	return userPublic{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserPublic(user), "User registered successfully")
}

// List handles the paginated account listing request.
func (h *UserHandler) List(c echo.Context) error {
	var page pageRequest
	if err := c.Bind(&page); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	users, err := h.uc.List(c.Request().Context(), page.Offset, page.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	out := userListPublic{Users: make([]userPublic, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, toUserPublic(u))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get handles the single account lookup request.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserPublic(user), "")
}

// Update handles the account update request. Requires authentication; a
// user may only update themself.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), id, middleware.CurrentUser(c), &usecase.UpdateUserInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserPublic(user), "User updated successfully")
}

// Delete handles the account deletion request, cascading the user's todos.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id, middleware.CurrentUser(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted")
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be an integer")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
