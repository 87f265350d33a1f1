package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourseStatus string

const (
	CourseStatusActive   CourseStatus = "Active"
	CourseStatusInactive CourseStatus = "Inactive"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseName     string  `gorm:"column:course_name;type:varchar(150);not null" json:"course_name"`
	CourseDuration *string `gorm:"column:course_duration;type:varchar(50)" json:"course_duration,omitempty"`

	// whole currency units; feeds the ledger's total on visitor conversion
	CourseFees int64 `gorm:"column:course_fees;not null;default:0;check:course_fees>=0" json:"course_fees"`

	CourseSkills pq.StringArray `gorm:"column:course_skills;type:text[]" json:"course_skills"`

	CourseStatus    CourseStatus `gorm:"column:course_status;type:varchar(20);not null;default:'Active'" json:"course_status"`
	CourseIsDeleted bool         `gorm:"column:course_is_deleted;not null;default:false;index" json:"course_is_deleted"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;default:now()" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null;default:now()" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.CourseCreatedAt.IsZero() {
		m.CourseCreatedAt = now
	}
	m.CourseUpdatedAt = now
	return nil
}

func (m *CourseModel) BeforeUpdate(tx *gorm.DB) error {
	m.CourseUpdatedAt = time.Now()
	return nil
}
