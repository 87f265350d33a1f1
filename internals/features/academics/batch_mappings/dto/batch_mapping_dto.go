package dto

import (
	"github.com/go-playground/validator/v10"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateBatchMappingRequest struct {
	CourseID   string   `json:"course_id" validate:"required,uuid"`
	BatchID    string   `json:"batch_id" validate:"required,uuid"`
	TutorID    string   `json:"tutor_id" validate:"required,uuid"`
	StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid"`
}

type UpdateBatchMappingRequest struct {
	TutorID    string   `json:"tutor_id" validate:"required,uuid"`
	StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid"`
}

func (r *CreateBatchMappingRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
func (r *UpdateBatchMappingRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
