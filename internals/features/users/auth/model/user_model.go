package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel representa la tabla users. Los datos de la ficha deportiva
// (nombre, dorsal, posición) viven en players; aquí sólo credenciales y rol.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-"`

	// admin | coach | player
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'player'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
