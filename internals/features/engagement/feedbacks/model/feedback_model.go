package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — feedbacks (hard delete)

   One row per (student, batch): re-submitting overwrites the
   previous rating instead of stacking rows. Course and tutor
   ids are resolved from the batch mapping at write time and
   stored denormalized, so tutor reads stay a single filter.
   ========================================================= */

type FeedbackModel struct {
	FeedbackID uuid.UUID `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feedback_id"`

	FeedbackStudentID uuid.UUID `gorm:"column:feedback_student_id;type:uuid;not null;uniqueIndex:uniq_feedback_student_batch,priority:1" json:"feedback_student_id"`
	FeedbackBatchID   uuid.UUID `gorm:"column:feedback_batch_id;type:uuid;not null;uniqueIndex:uniq_feedback_student_batch,priority:2;index" json:"feedback_batch_id"`
	FeedbackCourseID  uuid.UUID `gorm:"column:feedback_course_id;type:uuid;not null;index" json:"feedback_course_id"`
	FeedbackTutorID   uuid.UUID `gorm:"column:feedback_tutor_id;type:uuid;not null;index" json:"feedback_tutor_id"`

	// 1..5
	FeedbackRating  int     `gorm:"column:feedback_rating;not null" json:"feedback_rating"`
	FeedbackComment *string `gorm:"column:feedback_comment;type:text" json:"feedback_comment,omitempty"`

	FeedbackCreatedAt time.Time `gorm:"column:feedback_created_at;not null;default:now()" json:"feedback_created_at"`
	FeedbackUpdatedAt time.Time `gorm:"column:feedback_updated_at;not null;default:now()" json:"feedback_updated_at"`
}

func (FeedbackModel) TableName() string { return "feedbacks" }

func (m *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeedbackCreatedAt.IsZero() {
		m.FeedbackCreatedAt = now
	}
	m.FeedbackUpdatedAt = now
	return nil
}

func (m *FeedbackModel) BeforeUpdate(tx *gorm.DB) error {
	m.FeedbackUpdatedAt = time.Now()
	return nil
}
