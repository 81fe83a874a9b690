package handler

import (
	"log/slog"
	"net/http"

	"tasker/internal/delivery/http/middleware"
	"tasker/internal/delivery/http/response"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginRequest is the OAuth2-style password form: the username field
// carries the account email.
type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// AuthHandler holds dependencies for login and token refresh.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Login exchanges an email/password pair for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.Login(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, token, "Login successful")
}

// Refresh issues a fresh token for the current user. The route sits behind
// the auth middleware, so reaching here proves the old token is still
// valid.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, err := h.uc.Refresh(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, token, "Token refreshed successfully")
}
