package dto

import (
	"github.com/go-playground/validator/v10"
)

// SubmitFeedbackRequest carries only the rating — the student's batch and
// tutor are resolved server-side from the batch mapping.
type SubmitFeedbackRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (r *SubmitFeedbackRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
