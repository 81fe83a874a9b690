package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	mockRepo "tasker/internal/mocks/repository"
	mockSvc "tasker/internal/mocks/service"
	"tasker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.tokenService.EXPECT().Issue("alice@example.com").Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, "ghost@example.com", "secret")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

	output, err := fx.service.Login(ctx, "alice@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, output)
	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectCredentials)
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.tokenService.EXPECT().Issue("alice@example.com").Return("", errors.New("no signing key"))

	output, err := fx.service.Login(ctx, "alice@example.com", "secret")

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com"}

	fx.tokenService.EXPECT().Issue("alice@example.com").Return("fresh.jwt.token", nil)

	output, err := fx.service.Refresh(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, "fresh.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}
