package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — timetable_slots (hard delete)

   One row per batch/day: a "weekly timetable" in the UI is
   just N independent slot rows, one per selected day.
   ========================================================= */

type TimetableSlotModel struct {
	TimetableSlotID uuid.UUID `gorm:"column:timetable_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_slot_id"`

	TimetableSlotCourseID uuid.UUID `gorm:"column:timetable_slot_course_id;type:uuid;not null;index" json:"timetable_slot_course_id"`
	TimetableSlotBatchID  uuid.UUID `gorm:"column:timetable_slot_batch_id;type:uuid;not null;index:ix_slot_batch_day,priority:1" json:"timetable_slot_batch_id"`
	TimetableSlotTutorID  uuid.UUID `gorm:"column:timetable_slot_tutor_id;type:uuid;not null;index" json:"timetable_slot_tutor_id"`

	// Mon..Sun
	TimetableSlotDay string `gorm:"column:timetable_slot_day;type:varchar(3);not null;index:ix_slot_batch_day,priority:2" json:"timetable_slot_day"`

	// "HH:MM", zero padded — string order == chronological order
	TimetableSlotStartTime string `gorm:"column:timetable_slot_start_time;type:varchar(5);not null" json:"timetable_slot_start_time"`
	TimetableSlotEndTime   string `gorm:"column:timetable_slot_end_time;type:varchar(5);not null" json:"timetable_slot_end_time"`

	TimetableSlotDescription *string `gorm:"column:timetable_slot_description;type:text" json:"timetable_slot_description,omitempty"`

	TimetableSlotCreatedAt time.Time `gorm:"column:timetable_slot_created_at;not null;default:now()" json:"timetable_slot_created_at"`
	TimetableSlotUpdatedAt time.Time `gorm:"column:timetable_slot_updated_at;not null;default:now()" json:"timetable_slot_updated_at"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }

func (m *TimetableSlotModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.TimetableSlotCreatedAt.IsZero() {
		m.TimetableSlotCreatedAt = now
	}
	m.TimetableSlotUpdatedAt = now
	return nil
}

func (m *TimetableSlotModel) BeforeUpdate(tx *gorm.DB) error {
	m.TimetableSlotUpdatedAt = time.Now()
	return nil
}
