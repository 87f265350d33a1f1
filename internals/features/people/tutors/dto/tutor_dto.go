package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/people/tutors/model"
	helper "coachku_backend/internals/helpers"
)

type CreateTutorRequest struct {
	UserID      string   `json:"user_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,max=100"`
	Mobile      string   `json:"mobile" validate:"required,max=20"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Role        string   `json:"role" validate:"required,oneof=tutor hr other"`
	CourseIDs   []string `json:"course_ids" validate:"omitempty,dive,uuid"`
	JoiningDate string   `json:"joining_date" validate:"required,datetime=2006-01-02"`
	Status      *string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateTutorRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateTutorRequest) ToModel() (*model.TutorModel, error) {
	uid, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, apperr.Validation("invalid user_id")
	}
	joined, err := helper.ParseDateYMD(r.JoiningDate)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}
	t := &model.TutorModel{
		TutorUserID:      uid,
		TutorName:        r.Name,
		TutorMobile:      r.Mobile,
		TutorEmail:       r.Email,
		TutorRole:        r.Role,
		TutorJoiningDate: joined,
		TutorStatus:      "Active",
	}
	if r.Status != nil {
		t.TutorStatus = *r.Status
	}
	return t, nil
}

func (r *CreateTutorRequest) CourseUUIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.CourseIDs))
	for _, s := range r.CourseIDs {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

type UpdateTutorRequest = CreateTutorRequest
