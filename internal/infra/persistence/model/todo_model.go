package model

import "time"

// TodoModel mirrors the 'todos' table. State is stored as its wire string;
// membership in the enum is enforced by the application, not the column.
type TodoModel struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	State       string `gorm:"type:varchar(16);not null"`
	UserID      int64  `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
