package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	model "coachku_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	Name     string   `json:"name" validate:"required,max=150"`
	Duration *string  `json:"duration" validate:"omitempty,max=50"`
	Fees     int64    `json:"fees" validate:"min=0"`
	Skills   []string `json:"skills" validate:"omitempty,dive,max=100"`
	Status   *string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateCourseRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	course := &model.CourseModel{
		CourseName:     r.Name,
		CourseDuration: r.Duration,
		CourseFees:     r.Fees,
		CourseSkills:   pq.StringArray(r.Skills),
		CourseStatus:   model.CourseStatusActive,
	}
	if r.Status != nil {
		course.CourseStatus = model.CourseStatus(*r.Status)
	}
	return course
}

type UpdateCourseRequest = CreateCourseRequest
