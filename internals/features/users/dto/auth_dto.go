package dto

import (
	"github.com/go-playground/validator/v10"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin hr tutor student"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

func (r *RegisterRequest) Validate(v *validator.Validate) error    { return v.Struct(r) }
func (r *LoginRequest) Validate(v *validator.Validate) error       { return v.Struct(r) }
func (r *GoogleLoginRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

/* =========================================================
   RESPONSES
   ========================================================= */

type AuthUserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type LoginResponse struct {
	User        AuthUserResponse `json:"user"`
	AccessToken string           `json:"access_token"`
}
