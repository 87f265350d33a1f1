package dto

import (
	"github.com/go-playground/validator/v10"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type AttendanceEntryRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=P A L"`
}

// MarkAttendanceRequest carries the full list for a batch/day. Saving
// replaces whatever was recorded for that day before.
type MarkAttendanceRequest struct {
	CourseID string                   `json:"course_id" validate:"required,uuid"`
	BatchID  string                   `json:"batch_id" validate:"required,uuid"`
	Date     string                   `json:"date" validate:"required"` // YYYY-MM-DD
	Students []AttendanceEntryRequest `json:"students" validate:"required,min=1,dive"`
}

func (r *MarkAttendanceRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
