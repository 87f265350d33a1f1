package dto

import (
	"github.com/go-playground/validator/v10"

	model "coachku_backend/internals/features/academics/batches/model"
	helper "coachku_backend/internals/helpers"

	"coachku_backend/internals/apperr"
)

/* =========================================================
   REQUEST: Create / Update
   ========================================================= */

type CreateBatchRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateBatchRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

// ToModel also enforces the date-order invariant: when both dates are
// present, end must not be before start.
func (r *CreateBatchRequest) ToModel() (*model.BatchModel, error) {
	b := &model.BatchModel{
		BatchName:     r.Name,
		BatchCategory: r.Category,
		BatchStatus:   model.BatchStatusActive,
	}
	if r.Status != nil {
		b.BatchStatus = model.BatchStatus(*r.Status)
	}
	if r.StartDate != nil && *r.StartDate != "" {
		t, err := helper.ParseDateYMD(*r.StartDate)
		if err != nil {
			return nil, apperr.Validation(err.Error())
		}
		b.BatchStartDate = &t
	}
	if r.EndDate != nil && *r.EndDate != "" {
		t, err := helper.ParseDateYMD(*r.EndDate)
		if err != nil {
			return nil, apperr.Validation(err.Error())
		}
		b.BatchEndDate = &t
	}
	if b.BatchStartDate != nil && b.BatchEndDate != nil && b.BatchEndDate.Before(*b.BatchStartDate) {
		return nil, apperr.Validation("End date cannot be before start date")
	}
	return b, nil
}

type UpdateBatchRequest = CreateBatchRequest

/* =========================================================
   RESPONSE
   ========================================================= */

type BatchResponse struct {
	BatchID   string  `json:"batch_id"`
	Name      string  `json:"name"`
	Category  *string `json:"category,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    string  `json:"status"`
}

func FromModel(b *model.BatchModel) BatchResponse {
	resp := BatchResponse{
		BatchID:  b.BatchID.String(),
		Name:     b.BatchName,
		Category: b.BatchCategory,
		Status:   string(b.BatchStatus),
	}
	if b.BatchStartDate != nil {
		s := b.BatchStartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if b.BatchEndDate != nil {
		s := b.BatchEndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}
