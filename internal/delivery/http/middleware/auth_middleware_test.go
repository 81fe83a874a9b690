package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	mockRepo "tasker/internal/mocks/repository"
	mockSvc "tasker/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func performRequest(fx authMiddlewareFixtures, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = fx.middleware.Authenticate(next)(c)

	return rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 1, Email: "alice@example.com"}
	fx.tokenSvc.EXPECT().Validate("good-token").Return("alice@example.com", nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	var seen *entity.User
	rec := performRequest(fx, "Bearer good-token", func(c echo.Context) error {
		seen = CurrentUser(c)

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user, seen)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec := performRequest(fx, "", unreachableHandler(t))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrCouldNotValidateCredentials.Message())
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec := performRequest(fx, "Basic dXNlcjpwdw==", unreachableHandler(t))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		Validate("bad-token").
		Return("", domainerrors.ErrCouldNotValidateCredentials.WrapMessage("token validation failed"))

	rec := performRequest(fx, "Bearer bad-token", unreachableHandler(t))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrCouldNotValidateCredentials.Message())
}

func TestAuthMiddleware_Authenticate_UnknownSubject(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().Validate("orphan-token").Return("gone@example.com", nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	rec := performRequest(fx, "Bearer orphan-token", unreachableHandler(t))

	// A token whose subject no longer exists reads the same as a bad token.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// unreachableHandler fails the test if the middleware lets the request through.
func unreachableHandler(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("handler should not be reached")

		return nil
	}
}
