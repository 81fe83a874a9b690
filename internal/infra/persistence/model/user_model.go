// Package model holds the GORM table mappings. Models stay separate from
// domain entities so persistence concerns never leak into the domain.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are store-assigned sequences.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Todos []TodoModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
