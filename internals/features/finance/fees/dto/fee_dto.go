package dto

import (
	"github.com/go-playground/validator/v10"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateFeeRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Total     int64  `json:"total" validate:"gte=0"`
}

type AddInstallmentRequest struct {
	Amount int64   `json:"amount" validate:"required,gt=0"`
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
	Mode   string  `json:"mode" validate:"required,oneof=Cash UPI Bank"`
	Note   *string `json:"note"`
}

type UpdateFeeTotalRequest struct {
	Total int64 `json:"total" validate:"gte=0"`
}

func (r *CreateFeeRequest) Validate(v *validator.Validate) error     { return v.Struct(r) }
func (r *AddInstallmentRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
func (r *UpdateFeeTotalRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
