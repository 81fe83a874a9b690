// Package middleware contains the HTTP middlewares for authentication,
// request identification, and error translation.
package middleware

import (
	"strings"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/delivery/http/response"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the authenticated user from the bearer token on
// each protected request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and loads the current user. Every
// failure mode (missing header, malformed or expired token, subject that no
// longer maps to an account) produces the same 401 so a stale credential is
// indistinguishable from a forged one.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return m.reject(c)
		}

		subject, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return m.reject(c)
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), subject)
		if err != nil {
			// Not-found is deliberately folded into the credential
			// failure here.
			return m.reject(c)
		}

		SetCurrentUser(c, user)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	appErr := domainerrors.ErrCouldNotValidateCredentials

	return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
}

// SetCurrentUser stores the authenticated user on the echo context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(deliverycontext.KeyCurrentUser, user)
}

// CurrentUser returns the authenticated user resolved by Authenticate, or
// nil when the route is unprotected.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(deliverycontext.KeyCurrentUser).(*entity.User)

	return user
}
