package dto

import (
	"github.com/go-playground/validator/v10"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type DaySlotRequest struct {
	Day       string `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

// CreateTimetableRequest carries one slot per selected weekday; each day is
// checked and inserted independently.
type CreateTimetableRequest struct {
	CourseID    string           `json:"course_id" validate:"required,uuid"`
	BatchID     string           `json:"batch_id" validate:"required,uuid"`
	TutorID     string           `json:"tutor_id" validate:"required,uuid"`
	Slots       []DaySlotRequest `json:"slots" validate:"required,min=1,dive"`
	Description *string          `json:"description"`
}

type UpdateSlotRequest struct {
	Day         string  `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime   string  `json:"start_time" validate:"required,len=5"`
	EndTime     string  `json:"end_time" validate:"required,len=5"`
	Description *string `json:"description"`
}

func (r *CreateTimetableRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
func (r *UpdateSlotRequest) Validate(v *validator.Validate) error      { return v.Struct(r) }
