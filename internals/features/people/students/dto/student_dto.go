package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UpdateStudentRequest struct {
	Name    string  `json:"name" form:"name" validate:"required,max=100"`
	Email   *string `json:"email" form:"email" validate:"omitempty,email"`
	Mobile  string  `json:"mobile" form:"mobile" validate:"required,max=20"`
	BatchID *string `json:"batch_id" form:"batch_id" validate:"omitempty,uuid"`
	Status  *string `json:"status" form:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *UpdateStudentRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *UpdateStudentRequest) BatchUUID() *uuid.UUID {
	if r.BatchID == nil || *r.BatchID == "" {
		return nil
	}
	id, err := uuid.Parse(*r.BatchID)
	if err != nil {
		return nil
	}
	return &id
}
