package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"coachku_backend/internals/apperr"
	m "coachku_backend/internals/features/people/visitors/model"
	helper "coachku_backend/internals/helpers"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateVisitorRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=100"`
	Mobile           string  `json:"mobile" validate:"required,min=7,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Source           string  `json:"source" validate:"required,oneof=WalkIn Call Referral Online"`
	CourseInterestID *string `json:"course_interest_id" validate:"omitempty,uuid"`
	Note             *string `json:"note"`
	VisitDate        *string `json:"visit_date"` // YYYY-MM-DD, defaults to today
}

type UpdateVisitorRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=100"`
	Mobile           string  `json:"mobile" validate:"required,min=7,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Source           string  `json:"source" validate:"required,oneof=WalkIn Call Referral Online"`
	Status           string  `json:"status" validate:"required,oneof=Active FollowUp Converted NotInterested"`
	CourseInterestID *string `json:"course_interest_id" validate:"omitempty,uuid"`
	Note             *string `json:"note"`
	VisitDate        *string `json:"visit_date"` // YYYY-MM-DD
}

// ConvertVisitorRequest rides in a multipart form next to the required
// student photo. The admission amount becomes the first installment of the
// new fee ledger.
type ConvertVisitorRequest struct {
	CourseID        string  `form:"course_id" validate:"required,uuid"`
	BatchID         *string `form:"batch_id" validate:"omitempty,uuid"`
	AdmissionAmount int64   `form:"admission_amount" validate:"gte=0"`
	PaymentMode     string  `form:"payment_mode" validate:"omitempty,oneof=Cash UPI Bank"`
	AdmissionDate   *string `form:"admission_date"` // YYYY-MM-DD, defaults to today
}

func (r *CreateVisitorRequest) Validate(v *validator.Validate) error  { return v.Struct(r) }
func (r *UpdateVisitorRequest) Validate(v *validator.Validate) error  { return v.Struct(r) }
func (r *ConvertVisitorRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := helper.ParseDateYMD(*s)
	if err != nil {
		return nil, apperr.Validation("Invalid " + field + " (want YYYY-MM-DD)")
	}
	return &t, nil
}

func (r *CreateVisitorRequest) ToModel() (*m.VisitorModel, error) {
	visit, err := parseOptionalDate(r.VisitDate, "visit_date")
	if err != nil {
		return nil, err
	}
	v := &m.VisitorModel{
		VisitorName:             r.Name,
		VisitorMobile:           r.Mobile,
		VisitorEmail:            r.Email,
		VisitorSource:           r.Source,
		VisitorStatus:           m.StatusActive,
		VisitorCourseInterestID: parseOptionalUUID(r.CourseInterestID),
		VisitorNote:             r.Note,
	}
	if visit != nil {
		v.VisitorVisitDate = *visit
	}
	return v, nil
}

// Apply patches an existing row in place. Status moves are unrestricted here
// except into Converted, which only the conversion flow may set.
func (r *UpdateVisitorRequest) Apply(v *m.VisitorModel) error {
	if r.Status == m.StatusConverted && v.VisitorStatus != m.StatusConverted {
		return apperr.Validation("Use the convert endpoint to mark a visitor as converted")
	}
	visit, err := parseOptionalDate(r.VisitDate, "visit_date")
	if err != nil {
		return err
	}
	v.VisitorName = r.Name
	v.VisitorMobile = r.Mobile
	v.VisitorEmail = r.Email
	v.VisitorSource = r.Source
	v.VisitorStatus = r.Status
	v.VisitorCourseInterestID = parseOptionalUUID(r.CourseInterestID)
	v.VisitorNote = r.Note
	if visit != nil {
		v.VisitorVisitDate = *visit
	}
	return nil
}
