package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — students (1:1 with a login user)
   ========================================================= */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// FK → users(user_id); one student record per login account
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex:uniq_student_user" json:"student_user_id"`

	StudentName   string  `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentEmail  *string `gorm:"column:student_email;type:varchar(255)" json:"student_email,omitempty"`
	StudentMobile string  `gorm:"column:student_mobile;type:varchar(20);not null" json:"student_mobile"`

	StudentCourseID uuid.UUID  `gorm:"column:student_course_id;type:uuid;not null;index" json:"student_course_id"`
	StudentBatchID  *uuid.UUID `gorm:"column:student_batch_id;type:uuid;index" json:"student_batch_id,omitempty"`

	// relative path under the upload dir, webp
	StudentPhoto string `gorm:"column:student_photo;type:varchar(255);not null" json:"student_photo"`

	StudentAdmissionDate time.Time `gorm:"column:student_admission_date;not null;default:now()" json:"student_admission_date"`

	StudentStatus    string `gorm:"column:student_status;type:varchar(20);not null;default:'Active'" json:"student_status"`
	StudentIsDeleted bool   `gorm:"column:student_is_deleted;not null;default:false;index" json:"student_is_deleted"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;default:now();index" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	if m.StudentAdmissionDate.IsZero() {
		m.StudentAdmissionDate = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *StudentModel) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
