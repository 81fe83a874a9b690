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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt exploded"))

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Register_Conflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserConflict.WrapMessage("username or email taken"))

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserConflict)
}

func TestUserService_List_AppliesPaginationDefaults(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{{ID: 1, Username: "alice"}}

	fx.userRepo.EXPECT().List(ctx, usecase.DefaultSkip, usecase.DefaultLimit).Return(expected, nil)

	users, err := fx.service.List(ctx, -3, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_List_PassesExplicitPage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, 10, 5).Return([]*entity.User{}, nil)

	users, err := fx.service.List(ctx, 10, 5)

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_Get_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := &entity.User{ID: 7, Username: "bob", Email: "bob@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(expected, nil)

	user, err := fx.service.Get(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_Get_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Get(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Update_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	requester := &entity.User{ID: 1}
	input := &usecase.UpdateUserInput{Username: "mallory", Email: "mallory@example.com", Password: "pw"}

	// No repository expectations: the ownership check must reject before any
	// lookup, even for an ID that does not exist.
	user, err := fx.service.Update(ctx, 2, requester, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrNotEnoughPermissions)
}

func TestUserService_Update_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	requester := &entity.User{ID: 1}
	input := &usecase.UpdateUserInput{
		Username: "alice2",
		Email:    "alice2@example.com",
		Password: "newsecret",
	}
	stored := &entity.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "old_hash"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.hasher.EXPECT().Hash("newsecret").Return("new_hash", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Update(ctx, 1, requester, input)

	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.Equal(t, "alice2@example.com", user.Email)
	assert.Equal(t, "new_hash", user.PasswordHash)
}

func TestUserService_Update_Conflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	requester := &entity.User{ID: 1}
	input := &usecase.UpdateUserInput{Username: "taken", Email: "taken@example.com", Password: "pw"}
	stored := &entity.User{ID: 1, Username: "alice", Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserConflict.WrapMessage("username or email taken"))

	user, err := fx.service.Update(ctx, 1, requester, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserConflict)
}

func TestUserService_Delete_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	requester := &entity.User{ID: 1}

	err := fx.service.Delete(ctx, 2, requester)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotEnoughPermissions)
}

func TestUserService_Delete_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	requester := &entity.User{ID: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTodoRepo := mockRepo.NewMockTodoRepository(t)

			mockFactory.EXPECT().TodoRepo().Return(mockTodoRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockTodoRepo.EXPECT().DeleteAllByOwner(ctx, int64(1)).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, int64(1)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, 1, requester)

	require.NoError(t, err)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	requester := &entity.User{ID: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTodoRepo := mockRepo.NewMockTodoRepository(t)

			mockFactory.EXPECT().TodoRepo().Return(mockTodoRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockTodoRepo.EXPECT().DeleteAllByOwner(ctx, int64(1)).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, int64(1)).Return(repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, 1, requester)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
