package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — employees (tutors + HR staff share one table;
   the original system called this "employees" too)
   ========================================================= */

type TutorModel struct {
	TutorID uuid.UUID `gorm:"column:tutor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tutor_id"`

	// FK → users(user_id)
	TutorUserID uuid.UUID `gorm:"column:tutor_user_id;type:uuid;not null;uniqueIndex:uniq_tutor_user" json:"tutor_user_id"`

	TutorName   string  `gorm:"column:tutor_name;type:varchar(100);not null" json:"tutor_name"`
	TutorMobile string  `gorm:"column:tutor_mobile;type:varchar(20);not null" json:"tutor_mobile"`
	TutorEmail  *string `gorm:"column:tutor_email;type:varchar(255)" json:"tutor_email,omitempty"`

	// tutor | hr | other
	TutorRole string `gorm:"column:tutor_role;type:varchar(20);not null;index" json:"tutor_role"`

	TutorJoiningDate time.Time `gorm:"column:tutor_joining_date;not null" json:"tutor_joining_date"`

	TutorStatus    string `gorm:"column:tutor_status;type:varchar(20);not null;default:'Active'" json:"tutor_status"`
	TutorIsDeleted bool   `gorm:"column:tutor_is_deleted;not null;default:false;index" json:"tutor_is_deleted"`

	TutorCreatedAt time.Time `gorm:"column:tutor_created_at;not null;default:now()" json:"tutor_created_at"`
	TutorUpdatedAt time.Time `gorm:"column:tutor_updated_at;not null;default:now()" json:"tutor_updated_at"`
}

func (TutorModel) TableName() string { return "employees" }

func (m *TutorModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.TutorCreatedAt.IsZero() {
		m.TutorCreatedAt = now
	}
	m.TutorUpdatedAt = now
	return nil
}

func (m *TutorModel) BeforeUpdate(tx *gorm.DB) error {
	m.TutorUpdatedAt = time.Now()
	return nil
}

/* =========================================================
   Tutor ↔ courses they can teach (join table)
   ========================================================= */

type TutorCourseModel struct {
	TutorCourseTutorID  uuid.UUID `gorm:"column:tutor_course_tutor_id;type:uuid;primaryKey" json:"tutor_course_tutor_id"`
	TutorCourseCourseID uuid.UUID `gorm:"column:tutor_course_course_id;type:uuid;primaryKey" json:"tutor_course_course_id"`
}

func (TutorCourseModel) TableName() string { return "tutor_courses" }
