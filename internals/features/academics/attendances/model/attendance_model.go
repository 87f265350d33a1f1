package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — attendances (hard delete)

   One register row per batch per calendar day. The per-student
   marks live in a JSONB list that is overwritten whole on every
   save: re-marking a day replaces the list, it never merges.
   ========================================================= */

// single-letter marks: Present, Absent, Late
const (
	StatusPresent = "P"
	StatusAbsent  = "A"
	StatusLate    = "L"
)

type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
}

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceCourseID uuid.UUID `gorm:"column:attendance_course_id;type:uuid;not null;index" json:"attendance_course_id"`
	AttendanceBatchID  uuid.UUID `gorm:"column:attendance_batch_id;type:uuid;not null;index:ix_attendance_batch_date,priority:1" json:"attendance_batch_id"`

	// normalized to local start of day
	AttendanceDate time.Time `gorm:"column:attendance_date;not null;index:ix_attendance_batch_date,priority:2" json:"attendance_date"`

	AttendanceStudents datatypes.JSON `gorm:"column:attendance_students;type:jsonb;not null" json:"attendance_students"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;not null;default:now()" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;not null;default:now()" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AttendanceCreatedAt.IsZero() {
		m.AttendanceCreatedAt = now
	}
	m.AttendanceUpdatedAt = now
	return nil
}

func (m *AttendanceModel) BeforeUpdate(tx *gorm.DB) error {
	m.AttendanceUpdatedAt = time.Now()
	return nil
}

// SetEntries replaces the stored list wholesale.
func (m *AttendanceModel) SetEntries(entries []AttendanceEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	m.AttendanceStudents = datatypes.JSON(raw)
	return nil
}

// Entries decodes the stored list.
func (m *AttendanceModel) Entries() ([]AttendanceEntry, error) {
	var entries []AttendanceEntry
	if len(m.AttendanceStudents) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(m.AttendanceStudents, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
