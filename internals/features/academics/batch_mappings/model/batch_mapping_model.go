package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — batch_mappings

   The explicit batch → tutor lookup collaborator: feedback and
   student-timetable reads resolve the tutor/batch through this
   table instead of denormalizing tutor ids onto their rows.
   One mapping per (course, batch).
   ========================================================= */

type BatchMappingModel struct {
	BatchMappingID uuid.UUID `gorm:"column:batch_mapping_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_mapping_id"`

	BatchMappingCourseID uuid.UUID `gorm:"column:batch_mapping_course_id;type:uuid;not null;uniqueIndex:uniq_mapping_course_batch,priority:1" json:"batch_mapping_course_id"`
	BatchMappingBatchID  uuid.UUID `gorm:"column:batch_mapping_batch_id;type:uuid;not null;uniqueIndex:uniq_mapping_course_batch,priority:2;index" json:"batch_mapping_batch_id"`
	BatchMappingTutorID  uuid.UUID `gorm:"column:batch_mapping_tutor_id;type:uuid;not null;index" json:"batch_mapping_tutor_id"`

	BatchMappingCreatedAt time.Time `gorm:"column:batch_mapping_created_at;not null;default:now()" json:"batch_mapping_created_at"`
	BatchMappingUpdatedAt time.Time `gorm:"column:batch_mapping_updated_at;not null;default:now()" json:"batch_mapping_updated_at"`

	Students []BatchMappingStudentModel `gorm:"foreignKey:BatchMappingStudentMappingID;references:BatchMappingID" json:"students,omitempty"`
}

func (BatchMappingModel) TableName() string { return "batch_mappings" }

func (m *BatchMappingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BatchMappingCreatedAt.IsZero() {
		m.BatchMappingCreatedAt = now
	}
	m.BatchMappingUpdatedAt = now
	return nil
}

func (m *BatchMappingModel) BeforeUpdate(tx *gorm.DB) error {
	m.BatchMappingUpdatedAt = time.Now()
	return nil
}

type BatchMappingStudentModel struct {
	BatchMappingStudentMappingID uuid.UUID `gorm:"column:batch_mapping_student_mapping_id;type:uuid;primaryKey" json:"batch_mapping_student_mapping_id"`
	BatchMappingStudentStudentID uuid.UUID `gorm:"column:batch_mapping_student_student_id;type:uuid;primaryKey;index" json:"batch_mapping_student_student_id"`
}

func (BatchMappingStudentModel) TableName() string { return "batch_mapping_students" }
