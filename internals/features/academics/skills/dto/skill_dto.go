package dto

import (
	"github.com/go-playground/validator/v10"

	model "coachku_backend/internals/features/academics/skills/model"
)

type CreateSkillRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Category string  `json:"category" validate:"required,oneof=Frontend Backend Database DevOps Tools Other"`
	Status   *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateSkillRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateSkillRequest) ToModel() *model.SkillModel {
	s := &model.SkillModel{
		SkillName:     r.Name,
		SkillCategory: r.Category,
		SkillStatus:   "Active",
	}
	if r.Status != nil {
		s.SkillStatus = *r.Status
	}
	return s
}

type UpdateSkillRequest = CreateSkillRequest
