// Command gen produces the type-safe GORM query builders for the
// persistence models. Run it after changing anything under
// internal/infra/persistence/model.
package main

import (
	"tasker/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.TodoModel{},
	}

	generator := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	generator.ApplyBasic(models...)

	generator.Execute()
}
