package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel adalah credential login. user_id dipakai juga sebagai id
// profil (patient/physio) yang dibuat bersamaan — shared identity key.
type UserModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserLogin string    `gorm:"type:varchar(50);unique;not null;column:user_login" json:"user_login"`
	// bcrypt hash, tidak pernah keluar lewat JSON
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`
	// admin | physio | patient — immutable setelah dibuat
	UserRole      string    `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string { return "users" }
