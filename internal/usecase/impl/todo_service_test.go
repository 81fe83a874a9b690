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
	"tasker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// todoServiceFixtures holds all test dependencies for todo service tests.
type todoServiceFixtures struct {
	service  usecase.TodoUsecase
	todoRepo *mockRepo.MockTodoRepository
}

func createTestTodoService(t *testing.T) todoServiceFixtures {
	todoRepo := mockRepo.NewMockTodoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTodoService(TodoServiceParams{
		TodoRepo: todoRepo,
		Logger:   logger,
	})

	return todoServiceFixtures{
		service:  service,
		todoRepo: todoRepo,
	}
}

func strPtr(s string) *string { return &s }

func TestTodoService_Create_Success(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}
	input := &usecase.CreateTodoInput{
		Title:       "Buy milk",
		Description: "Two liters",
		State:       "draft",
	}

	fx.todoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Todo")).
		Run(func(ctx context.Context, todo *entity.Todo) {
			todo.ID = 10
		}).
		Return(nil)

	todo, err := fx.service.Create(ctx, owner, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, entity.StateDraft, todo.State)
	assert.Equal(t, int64(1), todo.UserID)
}

func TestTodoService_Create_InvalidState(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}
	input := &usecase.CreateTodoInput{
		Title: "Buy milk",
		State: "pending",
	}

	// The state is rejected before anything touches the repository.
	todo, err := fx.service.Create(ctx, owner, input)

	require.Error(t, err)
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTodoState)
}

func TestTodoService_List_BuildsFilter(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}
	input := &usecase.ListTodosInput{
		Title: strPtr("milk"),
		State: strPtr("doing"),
		Skip:  0,
		Limit: 0,
	}

	doing := entity.StateDoing
	expectedFilter := repository.TodoFilter{
		Title: strPtr("milk"),
		State: &doing,
	}
	expected := []*entity.Todo{{ID: 10, Title: "Buy milk", State: entity.StateDoing, UserID: 1}}

	fx.todoRepo.EXPECT().
		ListByOwner(ctx, int64(1), expectedFilter, usecase.DefaultSkip, usecase.DefaultLimit).
		Return(expected, nil)

	todos, err := fx.service.List(ctx, owner, input)

	require.NoError(t, err)
	assert.Equal(t, expected, todos)
}

func TestTodoService_List_InvalidStateFilter(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}
	input := &usecase.ListTodosInput{State: strPtr("archived")}

	todos, err := fx.service.List(ctx, owner, input)

	require.Error(t, err)
	assert.Nil(t, todos)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTodoState)
}

func TestTodoService_Patch_Success(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}
	stored := &entity.Todo{ID: 10, Title: "Buy milk", Description: "Two liters", State: entity.StateDraft, UserID: 1}
	input := &usecase.PatchTodoInput{State: strPtr("done")}

	fx.todoRepo.EXPECT().FindByOwner(ctx, int64(10), int64(1)).Return(stored, nil)
	fx.todoRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Todo")).Return(nil)

	todo, err := fx.service.Patch(ctx, 10, owner, input)

	require.NoError(t, err)
	assert.Equal(t, entity.StateDone, todo.State)
	// Fields absent from the input stay untouched.
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "Two liters", todo.Description)
}

func TestTodoService_Patch_NotFoundForOtherOwner(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 2}
	input := &usecase.PatchTodoInput{Title: strPtr("hijacked")}

	fx.todoRepo.EXPECT().FindByOwner(ctx, int64(10), int64(2)).Return(nil, repository.ErrTodoNotFound)

	todo, err := fx.service.Patch(ctx, 10, owner, input)

	require.Error(t, err)
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTodoService_Patch_InvalidState(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}
	stored := &entity.Todo{ID: 10, Title: "Buy milk", State: entity.StateDraft, UserID: 1}
	input := &usecase.PatchTodoInput{State: strPtr("blocked")}

	fx.todoRepo.EXPECT().FindByOwner(ctx, int64(10), int64(1)).Return(stored, nil)

	todo, err := fx.service.Patch(ctx, 10, owner, input)

	require.Error(t, err)
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTodoState)
}

func TestTodoService_Delete_Success(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}

	fx.todoRepo.EXPECT().DeleteByOwner(ctx, int64(10), int64(1)).Return(nil)

	err := fx.service.Delete(ctx, 10, owner)

	require.NoError(t, err)
}

func TestTodoService_Delete_NotFound(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 1}

	fx.todoRepo.EXPECT().DeleteByOwner(ctx, int64(99), int64(1)).Return(repository.ErrTodoNotFound)

	err := fx.service.Delete(ctx, 99, owner)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}
