package postgres

import (
	"tasker/internal/errors"
	"tasker/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persisted models, including
// the unique indexes on users and the todo owner FK with cascading delete.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.TodoModel{}); err != nil {
		return errors.Wrap(err, "failed to run schema migration")
	}

	return nil
}
