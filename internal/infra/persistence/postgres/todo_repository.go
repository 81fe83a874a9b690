package postgres

import (
	"context"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the domain.TodoRepository interface using GORM.
// Every single-row operation is keyed by (id, user_id) so one owner's rows
// are unreachable from another account.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// Create persists a new todo for its owner.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "todo owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// FindByOwner retrieves the todo with the given id belonging to ownerID.
func (repo *todoRepository) FindByOwner(ctx context.Context, id, ownerID int64) (*entity.Todo, error) {
	var todoM model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return toTodoDomain(&todoM)
}

// ListByOwner returns the owner's todos narrowed by filter. Title and
// description are case-sensitive substring matches, state is exact, and all
// set filters combine with AND.
func (repo *todoRepository) ListByOwner(ctx context.Context, ownerID int64, filter repository.TodoFilter, skip, limit int) ([]*entity.Todo, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", ownerID)

	if filter.Title != nil {
		query = query.Where("title LIKE ?", "%"+*filter.Title+"%")
	}
	if filter.Description != nil {
		query = query.Where("description LIKE ?", "%"+*filter.Description+"%")
	}
	if filter.State != nil {
		query = query.Where("state = ?", filter.State.String())
	}

	var models []model.TodoModel
	if err := query.Order("id").Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	todos := make([]*entity.Todo, 0, len(models))
	for i := range models {
		todo, err := toTodoDomain(&models[i])
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

// Update saves the mutated todo and refreshes UpdatedAt.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Save(todoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update todo")
	}

	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// DeleteByOwner removes the todo with the given id belonging to ownerID.
func (repo *todoRepository) DeleteByOwner(ctx context.Context, id, ownerID int64) error {
	tx := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TodoModel{})
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to delete todo")
	}
	if tx.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// DeleteAllByOwner removes every todo of the owner. Part of the user
// deletion cascade; deleting zero rows is not an error.
func (repo *todoRepository) DeleteAllByOwner(ctx context.Context, ownerID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Delete(&model.TodoModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete todos for owner")
	}

	return nil
}

// toTodoDomain maps the persistence model back to a domain entity. A state
// value outside the enum (written out-of-band) is a data-integrity failure,
// never silently coerced.
func toTodoDomain(m *model.TodoModel) (*entity.Todo, error) {
	state, err := entity.ParseTodoState(m.State)
	if err != nil {
		return nil, domainerrors.ErrCorruptTodoState.WrapMessage("todo " + m.Title)
	}

	return &entity.Todo{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		State:       state,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// fromTodoDomain maps a domain entity to the persistence model.
func fromTodoDomain(t *entity.Todo) *model.TodoModel {
	return &model.TodoModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		State:       t.State.String(),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
