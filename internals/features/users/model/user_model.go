package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — users (login accounts for admin/hr/tutor/student)
   ========================================================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uniq_user_email" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	// admin | hr | tutor | student
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'student';index" json:"user_role"`

	// set for accounts created through Google sign-in
	UserGoogleID *string `gorm:"column:user_google_id;type:varchar(64);index" json:"-"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) error {
	m.UserUpdatedAt = time.Now()
	return nil
}
